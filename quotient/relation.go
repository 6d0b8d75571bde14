package quotient

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/cells"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// Sentinel errors for identification and validation.
var (
	// ErrUnknownSimplex indicates an identified simplex that was never
	// inserted into the builder (no boundary entry).
	ErrUnknownSimplex = errors.New("quotient: simplex not in complex")
	// ErrRankMismatch indicates an attempt to identify simplices with
	// different vertex counts.
	ErrRankMismatch = errors.New("quotient: cannot identify simplices of different rank")
	// ErrOrderMismatch indicates an identification that does not commute
	// with the boundary maps under the positional vertex bijection.
	ErrOrderMismatch = errors.New("quotient: identification does not commute with vertex order")
)

// Relation is an equivalence relation over the simplices of one builder.
// It is a derived, read-only view of the builder: identifying simplices
// never mutates the complex.
type Relation struct {
	b       *builder.Builder
	classes map[string]*Class // simplex key -> merged class
}

// New returns the discrete relation (every simplex its own class) over b.
func New(b *builder.Builder) *Relation {
	return &Relation{b: b, classes: make(map[string]*Class)}
}

// Builder returns the underlying builder.
func (r *Relation) Builder() *builder.Builder { return r.b }

// ClassOf returns the equivalence class of s, a singleton if s was never
// identified with anything. Merged classes are shared objects: every member
// maps to the identical *Class.
func (r *Relation) ClassOf(s simplex.Simplex) *Class {
	if cls, ok := r.classes[s.Key()]; ok {
		return cls
	}
	return singleton(s)
}

// Identify merges the equivalence classes of all given simplices into one,
// then recursively identifies their corresponding boundary faces pointwise:
// the i-th faces of all given simplices, for every i. Recursion terminates
// at the empty simplex, which has no faces.
//
// Every simplex must already be in the complex, and all must have the same
// rank.
func (r *Relation) Identify(simplices ...simplex.Simplex) error {
	if len(simplices) == 0 {
		return nil
	}
	rank := simplices[0].Rank()
	boundaries := make([][]simplex.Simplex, len(simplices))
	for i, s := range simplices {
		if s.Rank() != rank {
			return fmt.Errorf("%w: (%s) and (%s)", ErrRankMismatch,
				simplices[0].Key(), s.Key())
		}
		bd := r.b.Boundary(s)
		if bd == nil {
			return fmt.Errorf("%w: (%s)", ErrUnknownSimplex, s.Key())
		}
		boundaries[i] = bd
	}
	r.merge(simplices)
	// Pointwise recursion into the boundaries: position i across all
	// identified simplices forms the next identification.
	for i := 0; i < rank; i++ {
		faces := make([]simplex.Simplex, len(boundaries))
		for j, bd := range boundaries {
			faces[j] = bd[i]
		}
		if err := r.Identify(faces...); err != nil {
			return err
		}
	}
	return nil
}

// merge unions the classes of the given simplices and points every member
// of the union at the one merged class.
func (r *Relation) merge(simplices []simplex.Simplex) {
	union := make(map[string]simplex.Simplex)
	for _, s := range simplices {
		for key, member := range r.ClassOf(s).members {
			union[key] = member
		}
	}
	merged := newClass(union)
	for key := range union {
		r.classes[key] = merged
	}
}

// Validate checks invariant 3: for every identified pair (src, dst) in the
// same class, the vertex bijection given by positional correspondence must
// commute with both boundary maps — the i-th face of src must map
// vertex-by-vertex onto the i-th face of dst.
func (r *Relation) Validate() error {
	for _, srcKey := range sortedKeys(r.classes) {
		cls := r.classes[srcKey]
		src := cls.members[srcKey]
		srcBoundary := r.b.Boundary(src)
		if srcBoundary == nil {
			return fmt.Errorf("%w: (%s)", ErrUnknownSimplex, srcKey)
		}
		for _, dst := range cls.Members() {
			vertexMap := make(map[string]simplex.Vertex, len(src))
			for i, v := range src {
				vertexMap[v.Key()] = dst[i]
			}
			dstBoundary := r.b.Boundary(dst)
			if dstBoundary == nil {
				return fmt.Errorf("%w: (%s)", ErrUnknownSimplex, dst.Key())
			}
			for i := range srcBoundary {
				srcFacet, dstFacet := srcBoundary[i], dstBoundary[i]
				for j := range srcFacet {
					want, ok := vertexMap[srcFacet[j].Key()]
					if !ok || !want.Equal(dstFacet[j]) {
						return fmt.Errorf(
							"%w: identifying (%s) with (%s): face %d vertex (%s) should map to (%s), got (%s)",
							ErrOrderMismatch, src.Key(), dst.Key(), i,
							srcFacet[j].Key(), dstFacet[j].Key(), want.Key())
					}
				}
			}
		}
	}
	return nil
}

// Quotient collapses the builder's complex along the relation: for each
// rank the cells become the distinct equivalence classes present, and each
// boundary entry becomes the classes of its faces. The result is a new,
// independent collection; the source builder is untouched.
func (r *Relation) Quotient() *cells.Collection {
	dim := r.b.Dimension()
	ranks := make(map[int][]cells.Cell, dim+2)
	boundary := make(map[string][]cells.Cell)
	for rank := 0; rank <= dim+1; rank++ {
		seen := make(map[string]struct{})
		var classList []cells.Cell
		for _, s := range r.b.Simplices(rank) {
			cls := r.ClassOf(s)
			if _, ok := seen[cls.Key()]; ok {
				continue
			}
			seen[cls.Key()] = struct{}{}
			classList = append(classList, cls)
			faces := r.b.Boundary(s)
			faceClasses := make([]cells.Cell, len(faces))
			for i, face := range faces {
				faceClasses[i] = r.ClassOf(face)
			}
			boundary[cls.Key()] = faceClasses
		}
		ranks[rank] = classList
	}
	return cells.New(dim, ranks, boundary)
}

func sortedKeys(m map[string]*Class) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
