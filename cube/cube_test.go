package cube_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/cube"
	"github.com/vbraun/torsion-cup-product/homology"
	"github.com/vbraun/torsion-cup-product/simplex"
)

func v(coords ...int) simplex.Vertex { return simplex.NewVertex(coords...) }

func sortedKeys(simplices []simplex.Simplex) []string {
	keys := make([]string, len(simplices))
	for i, s := range simplices {
		keys[i] = s.Key()
	}
	sort.Strings(keys)
	return keys
}

func TestUnit_Square(t *testing.T) {
	u := cube.NewUnit(2)
	assert.Equal(t, 2, u.Dimension())
	assert.Equal(t, 2, u.Len())

	points := u.Points()
	require.Len(t, points, 4)
	assert.Equal(t, "0,0", points[0].Key())
	assert.Equal(t, "0,1", points[1].Key())
	assert.Equal(t, "1,0", points[2].Key())
	assert.Equal(t, "1,1", points[3].Key())

	assert.Equal(t,
		[]string{"0,0|0,1|1,1", "0,0|1,0|1,1"},
		sortedKeys(u.Simplices()))
}

// Every reference simplex is a monotone chain from the origin to the
// all-ones corner, gaining one coordinate per step.
func TestUnit_MonotoneChains(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 4} {
		u := cube.NewUnit(dim)
		simplices := u.Simplices()
		fact := 1
		for i := 2; i <= dim; i++ {
			fact *= i
		}
		require.Len(t, simplices, fact)

		origin := make(simplex.Vertex, dim)
		for _, s := range simplices {
			require.Len(t, s, dim+1)
			assert.True(t, s[0].Equal(origin))
			for i := 1; i < len(s); i++ {
				sum := 0
				for axis := range s[i] {
					assert.GreaterOrEqual(t, s[i][axis], s[i-1][axis])
					sum += s[i][axis]
				}
				assert.Equal(t, i, sum)
			}
		}
	}
}

func TestTriangulation_Errors(t *testing.T) {
	_, err := cube.New()
	assert.True(t, errors.Is(err, cube.ErrNoCorners))

	_, err = cube.New(v(0, 0), v(1, 0), v(0, 1))
	assert.True(t, errors.Is(err, cube.ErrCornerCount))

	_, err = cube.New(v(0, 0), v(0, 1), v(0, 0), v(0, 1))
	assert.True(t, errors.Is(err, cube.ErrDegenerate))
}

// TestTriangulation_PrescribedOrder pins the corner-order semantics: each
// simplex lists its vertices in the order the corners were given.
func TestTriangulation_PrescribedOrder(t *testing.T) {
	tri, err := cube.New(v(1, 2), v(4, 3), v(1, 3), v(4, 2))
	require.NoError(t, err)

	assert.Equal(t, 2, tri.Dimension())
	assert.Equal(t, 2, tri.Len())

	points := tri.Points()
	require.Len(t, points, 4)
	assert.Equal(t, "1,2", points[0].Key())
	assert.Equal(t, "1,3", points[1].Key())
	assert.Equal(t, "4,2", points[2].Key())
	assert.Equal(t, "4,3", points[3].Key())

	assert.Equal(t,
		[]string{"1,2|4,3|1,3", "1,2|4,3|4,2"},
		sortedKeys(tri.Simplices()))
}

func TestFilter(t *testing.T) {
	f := cube.UnitFilter(2)
	assert.True(t, f.Contains(v(0, 1)))
	assert.False(t, f.Contains(v(2, 0)))
	assert.False(t, f.Contains(v(0)), "wrong dimension")

	got := f.Apply([]simplex.Vertex{v(0, 0), v(0, 2), v(1, 1)})
	assert.Equal(t, []simplex.Vertex{v(0, 0), v(1, 1)}, got)

	odd := cube.NewFilter([]int{1, 3}, []int{0})
	assert.True(t, odd.Contains(v(3, 0)))
	assert.False(t, odd.Contains(v(2, 0)))
}

func TestTriangulateBox_Square(t *testing.T) {
	b, err := builder.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, cube.TriangulateBox(b))

	assert.Equal(t, 9, b.SimplexCount(1))
	assert.Equal(t, 16, b.SimplexCount(2))
	assert.Equal(t, 8, b.SimplexCount(3))

	col := b.Cells()
	require.NoError(t, col.Validate())

	cc, err := col.ChainComplex()
	require.NoError(t, err)
	require.NoError(t, cc.Validate())

	// The box is contractible.
	assert.Equal(t, homology.Group{Rank: 1}, cc.Group(0))
	for _, g := range cc.Groups(homology.Reduced()) {
		assert.True(t, g.IsTrivial())
	}
}

func TestTriangulateBox_Cube(t *testing.T) {
	b, err := builder.New(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, cube.TriangulateBox(b))

	assert.Equal(t, 8, b.SimplexCount(1))
	assert.Equal(t, 6, b.SimplexCount(4))

	col := b.Cells()
	require.NoError(t, col.Validate())

	cc, err := col.ChainComplex()
	require.NoError(t, err)
	require.NoError(t, cc.Validate())
	for _, g := range cc.Groups(homology.Reduced()) {
		assert.True(t, g.IsTrivial())
	}
}

// Shared faces of neighboring lattice cells are interned with identical
// orders, so triangulating a larger box never trips the order invariant and
// re-running it is idempotent.
func TestTriangulateBox_Idempotent(t *testing.T) {
	b, err := builder.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, cube.TriangulateBox(b))
	count := b.SimplexCount(3)
	require.NoError(t, cube.TriangulateBox(b))
	assert.Equal(t, count, b.SimplexCount(3))
}
