package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/simplex"
)

func v(coords ...int) simplex.Vertex { return simplex.NewVertex(coords...) }

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		side []int
	}{
		{"no sides", nil},
		{"zero side", []int{2, 0}},
		{"negative side", []int{-1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.New(tc.side...)
			assert.True(t, errors.Is(err, builder.ErrSideLength))
		})
	}
}

func TestNew_Accessors(t *testing.T) {
	b, err := builder.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Dimension())
	assert.Equal(t, []int{2, 3}, b.SideLength())

	side := b.SideLength()
	side[0] = 99
	assert.Equal(t, []int{2, 3}, b.SideLength(), "SideLength must return a copy")

	assert.True(t, b.InBox(v(0, 0)))
	assert.True(t, b.InBox(v(2, 3)))
	assert.False(t, b.InBox(v(3, 0)))
	assert.False(t, b.InBox(v(-1, 0)))
	assert.False(t, b.InBox(v(1)), "wrong dimension")
}

// TestAddSimplex_RecursiveClosure checks that inserting one triangle pulls
// in its whole face lattice down to the empty simplex.
func TestAddSimplex_RecursiveClosure(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)

	tri, err := b.AddSimplex(v(0, 0), v(1, 0), v(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "0,0|1,0|1,1", tri.Key())

	assert.Equal(t, 1, b.SimplexCount(3))
	assert.Equal(t, 3, b.SimplexCount(2))
	assert.Equal(t, 3, b.SimplexCount(1))
	assert.Equal(t, 1, b.SimplexCount(0), "augmentation cell")

	faces := b.Boundary(tri)
	require.Len(t, faces, 3)
	assert.Equal(t, "1,0|1,1", faces[0].Key())
	assert.Equal(t, "0,0|1,1", faces[1].Key())
	assert.Equal(t, "0,0|1,0", faces[2].Key())
}

// TestAddSimplex_BoundarySquares checks ∂∂ = 0 combinatorially: face j of
// face i equals face i of face j for i < j, for every inserted simplex.
func TestAddSimplex_BoundarySquares(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(1, 0), v(1, 1))
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(0, 1), v(1, 1))
	require.NoError(t, err)

	for rank := 2; rank <= 3; rank++ {
		for _, s := range b.Simplices(rank) {
			faces := b.Boundary(s)
			for i := 0; i < len(faces); i++ {
				for j := i + 1; j < len(faces); j++ {
					fi := b.Boundary(faces[i])
					fj := b.Boundary(faces[j])
					assert.Equal(t, fi[j-1].Key(), fj[i].Key(),
						"simplex %s faces %d,%d", s.Key(), i, j)
				}
			}
		}
	}
}

func TestAddSimplex_Idempotent(t *testing.T) {
	b, err := builder.New(1)
	require.NoError(t, err)

	first, err := b.AddSimplex(v(0), v(1))
	require.NoError(t, err)
	second, err := b.AddSimplex(v(0), v(1))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, b.SimplexCount(2))
	assert.Equal(t, 2, b.SimplexCount(1))
}

func TestAddSimplex_OrderConflict(t *testing.T) {
	b, err := builder.New(1)
	require.NoError(t, err)

	_, err = b.AddSimplex(v(0), v(1))
	require.NoError(t, err)

	_, err = b.AddSimplex(v(1), v(0))
	assert.True(t, errors.Is(err, simplex.ErrVertexOrder))
	assert.Equal(t, 1, b.SimplexCount(2), "failed insertion must not grow the complex")
}

func TestAddSimplex_OutOfBox(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)

	_, err = b.AddSimplex(v(0, 0), v(2, 0))
	assert.True(t, errors.Is(err, builder.ErrOutOfBox))

	_, err = b.AddSimplex(v(0, 0), v(0, -1))
	assert.True(t, errors.Is(err, builder.ErrOutOfBox))

	_, err = b.AddSimplex(v(0))
	assert.True(t, errors.Is(err, builder.ErrDimension))
}

// MakeSimplex interns an order without inserting.
func TestMakeSimplex_DoesNotInsert(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)

	s, err := b.MakeSimplex(v(1, 1), v(0, 0))
	require.NoError(t, err)
	assert.False(t, b.Has(s))
	assert.Equal(t, 0, b.SimplexCount(2))

	// The interned order still binds later insertions.
	_, err = b.AddSimplex(v(0, 0), v(1, 1))
	assert.True(t, errors.Is(err, simplex.ErrVertexOrder))
}

func TestFacetsAtBoundary(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(1, 0), v(1, 1))
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(0, 1), v(1, 1))
	require.NoError(t, err)

	tests := []struct {
		name  string
		axis  int
		inner bool
		want  []string
	}{
		{"x min", 0, true, []string{"0,0|0,1"}},
		{"x max", 0, false, []string{"1,0|1,1"}},
		{"y min", 1, true, []string{"0,0|1,0"}},
		{"y max", 1, false, []string{"0,1|1,1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facets := b.FacetsAtBoundary(tc.axis, tc.inner)
			keys := make([]string, len(facets))
			for i, f := range facets {
				keys[i] = f.Key()
			}
			assert.Equal(t, tc.want, keys)
		})
	}
}

func TestLatticeEdges(t *testing.T) {
	b, err := builder.New(2, 1)
	require.NoError(t, err)

	edges := b.LatticeEdges()
	// Two bases along x, one along y, two axes each.
	assert.Len(t, edges, 4)
	for _, e := range edges {
		assert.True(t, b.InBox(e[0]))
		assert.True(t, b.InBox(e[1]))
		diff := 0
		for i := range e[0] {
			diff += e[1][i] - e[0][i]
		}
		assert.Equal(t, 1, diff, "unit edge %s -> %s", e[0].Key(), e[1].Key())
	}
}

func TestClone_Independence(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(1, 1))
	require.NoError(t, err)

	c := b.Clone()
	_, err = c.AddSimplex(v(0, 0), v(1, 0))
	require.NoError(t, err)

	assert.Equal(t, 1, b.SimplexCount(2))
	assert.Equal(t, 2, c.SimplexCount(2))

	// Registry clones are independent too: a conflicting order accepted
	// nowhere, but fresh sets on the clone never leak back.
	_, err = c.AddSimplex(v(1, 0), v(0, 0))
	assert.True(t, errors.Is(err, simplex.ErrVertexOrder))
	_, err = b.AddSimplex(v(1, 0), v(0, 0))
	require.NoError(t, err, "order recorded only on the clone")
}

func TestCells_Snapshot(t *testing.T) {
	b, err := builder.New(1, 1)
	require.NoError(t, err)
	_, err = b.AddSimplex(v(0, 0), v(1, 0), v(1, 1))
	require.NoError(t, err)

	col := b.Cells()
	require.NoError(t, col.Validate())
	assert.Equal(t, 2, col.Dimension())
	assert.Len(t, col.Rank(3), 1)
	assert.Len(t, col.Rank(2), 3)
	assert.Len(t, col.Rank(1), 3)

	// Snapshot: later insertions do not show up.
	_, err = b.AddSimplex(v(0, 0), v(0, 1), v(1, 1))
	require.NoError(t, err)
	assert.Len(t, col.Rank(3), 1)
}
