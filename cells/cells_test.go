package cells_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/cells"
	"github.com/vbraun/torsion-cup-product/homology"
	"github.com/vbraun/torsion-cup-product/simplex"
)

func v(coords ...int) simplex.Vertex { return simplex.NewVertex(coords...) }

func s(vertices ...simplex.Vertex) simplex.Simplex { return simplex.New(vertices...) }

// square returns the unit square triangulated into two triangles.
func square(t *testing.T) *cells.Collection {
	t.Helper()
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(1, 0), v(1, 1))
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(0, 1), v(1, 1))
	require.NoError(t, err)
	return b.Cells()
}

func TestCollection_Accessors(t *testing.T) {
	col := square(t)

	assert.Equal(t, 2, col.Dimension())
	assert.Len(t, col.Rank(1), 4)
	assert.Len(t, col.Rank(2), 5)
	assert.Len(t, col.Rank(3), 2)

	// Sorted by key.
	edges := col.Rank(2)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].Key(), edges[i].Key())
	}

	tri := col.Rank(3)[0]
	faces := col.Boundary(tri)
	require.Len(t, faces, 3)
	assert.Nil(t, col.Boundary(s(v(9, 9))))
}

func TestCollection_Validate(t *testing.T) {
	require.NoError(t, square(t).Validate())
}

// TestCollection_Validate_Corrupt hand-builds a triangle whose boundary
// tuple is scrambled, so the positional face identity fails.
func TestCollection_Validate_Corrupt(t *testing.T) {
	v0, v1, v2 := v(0), v(1), v(2)
	tri := s(v0, v1, v2)
	e01, e02, e12 := s(v0, v1), s(v0, v2), s(v1, v2)

	ranks := map[int][]cells.Cell{
		1: {vert(v0), vert(v1), vert(v2)},
		2: {e01, e02, e12},
		3: {tri},
	}
	empty := s()
	boundary := map[string][]cells.Cell{
		// Scrambled: the correct tuple is (1|2), (0|2), (0|1).
		tri.Key():      {e01, e02, e12},
		e01.Key():      {vert(v1), vert(v0)},
		e02.Key():      {vert(v2), vert(v0)},
		e12.Key():      {vert(v2), vert(v1)},
		vert(v0).Key(): {empty},
		vert(v1).Key(): {empty},
		vert(v2).Key(): {empty},
	}
	col := cells.New(2, ranks, boundary)
	err := col.Validate()
	assert.True(t, errors.Is(err, cells.ErrBoundary))
}

func TestCollection_Validate_MissingFace(t *testing.T) {
	v0, v1, v2 := v(0), v(1), v(2)
	tri := s(v0, v1, v2)
	e01, e02, e12 := s(v0, v1), s(v0, v2), s(v1, v2)

	ranks := map[int][]cells.Cell{
		2: {e01, e02, e12},
		3: {tri},
	}
	boundary := map[string][]cells.Cell{
		tri.Key(): {e12, e02, e01},
		// No entries for the edges.
	}
	col := cells.New(2, ranks, boundary)
	err := col.Validate()
	assert.True(t, errors.Is(err, cells.ErrMissing))
}

func vert(x simplex.Vertex) cells.Cell { return simplex.New(x) }

func TestChainComplex_Shapes(t *testing.T) {
	cc, err := square(t).ChainComplex()
	require.NoError(t, err)

	assert.Equal(t, 2, cc.Dimension())
	assert.Equal(t, 4, cc.CellCount(0))
	assert.Equal(t, 5, cc.CellCount(1))
	assert.Equal(t, 2, cc.CellCount(2))
	require.NoError(t, cc.Validate())
}

// The square is contractible, so its reduced homology vanishes.
func TestChainComplex_SquareHomology(t *testing.T) {
	cc, err := square(t).ChainComplex()
	require.NoError(t, err)

	groups := cc.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, 1, groups[0].Rank)
	assert.Empty(t, groups[0].Torsion)
	assert.True(t, groups[1].IsTrivial())
	assert.True(t, groups[2].IsTrivial())

	for _, g := range cc.Groups(homology.Reduced()) {
		assert.True(t, g.IsTrivial())
	}
}
