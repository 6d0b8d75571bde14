package triangulate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/orbit"
	"github.com/vbraun/torsion-cup-product/simplex"
	"github.com/vbraun/torsion-cup-product/triangulate"
)

func v(coords ...int) simplex.Vertex { return simplex.NewVertex(coords...) }

// emptySquare returns the search root over an empty 1×1 box without group
// generators.
func emptySquare(t *testing.T) *triangulate.Finder {
	t.Helper()
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	return triangulate.NewFinder(orbit.New(b))
}

func signature(f *triangulate.Finder) string {
	keys := make([]string, 0)
	for _, e := range f.UnitOrientations() {
		keys = append(keys, e.Key())
	}
	return strings.Join(keys, " ")
}

func TestEdge(t *testing.T) {
	e := triangulate.Edge{From: v(0, 0), To: v(1, 1)}
	assert.Equal(t, "0,0->1,1", e.Key())
	assert.Equal(t, "1,1->0,0", e.Reversed().Key())
}

func TestUnitEdges_Square(t *testing.T) {
	f := emptySquare(t)
	edges := f.UnitEdges()
	keys := make([]string, len(edges))
	for i, e := range edges {
		keys[i] = e.Key()
	}
	assert.Equal(t, []string{
		"0,0->0,1",
		"0,0->1,0",
		"0,0->1,1",
		"0,1->1,1",
		"1,0->1,1",
	}, keys)
}

func TestAmbiguousEdges_Fresh(t *testing.T) {
	f := emptySquare(t)
	assert.Len(t, f.AmbiguousEdges(), 5)
	assert.False(t, f.Terminal())
	assert.Empty(t, f.UnitOrientations())
}

// Committing one edge also orients its periodic translate, so two ambiguous
// edges disappear at once.
func TestWithEdgeAdded_PeriodicCoupling(t *testing.T) {
	f := emptySquare(t)

	next, err := f.WithEdgeAdded(v(0, 0), v(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "0,0->1,0 0,1->1,1", signature(next))
	assert.Len(t, next.AmbiguousEdges(), 3)

	// The original state is untouched.
	assert.Len(t, f.AmbiguousEdges(), 5)
}

// An edge on the maximal face canonicalizes into the fundamental box before
// its orbit is inserted.
func TestWithEdgeAdded_Canonicalizes(t *testing.T) {
	f := emptySquare(t)

	next, err := f.WithEdgeAdded(v(0, 1), v(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "0,0->1,0 0,1->1,1", signature(next))
}

// A committed orientation binds the interned vertex order: the opposite
// orientation of the same edge set must fail.
func TestWithEdgeAdded_OrderConflict(t *testing.T) {
	f := emptySquare(t)

	next, err := f.WithEdgeAdded(v(0, 0), v(1, 0))
	require.NoError(t, err)

	_, err = next.WithEdgeAdded(v(1, 1), v(0, 1))
	assert.ErrorIs(t, err, simplex.ErrVertexOrder)
}

func TestWithAllEdgesToOrigin(t *testing.T) {
	f := emptySquare(t)

	seeded, err := f.WithAllEdgesToOrigin()
	require.NoError(t, err)
	assert.True(t, seeded.Terminal())
	assert.Equal(t,
		"0,1->0,0 1,0->0,0 1,1->0,0 1,1->0,1 1,1->1,0",
		signature(seeded))

	order, err := seeded.Ordered()
	require.NoError(t, err)
	require.Len(t, order, 4)
	assert.Equal(t, "1,1", order[0].Key())
	assert.Equal(t, "0,0", order[3].Key())

	levels, err := seeded.LevelSets()
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, "1,1", levels[0][0].Key())
	require.Len(t, levels[1], 2)
	assert.Equal(t, "0,1", levels[1][0].Key())
	assert.Equal(t, "1,0", levels[1][1].Key())
	assert.Equal(t, "0,0", levels[2][0].Key())
}
