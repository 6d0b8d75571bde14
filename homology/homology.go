package homology

import (
	"errors"
	"fmt"
)

// ErrShape indicates boundary matrix dimensions inconsistent with the
// declared cell counts.
var ErrShape = errors.New("homology: boundary matrix shape mismatch")

// Option configures homology computation.
type Option func(*options)

type options struct {
	reduced bool
}

// Reduced subtracts the augmentation: H_0 loses one free rank, so a
// contractible complex has vanishing homology in every dimension.
func Reduced() Option {
	return func(o *options) { o.reduced = true }
}

// ChainComplex is a finite chain complex of free ℤ-modules
//
//	C_n → … → C_1 → C_0
//
// given by the number of cells per dimension and the boundary matrices
// ∂_k : C_k → C_{k-1} for k = 1..n.
type ChainComplex struct {
	counts     []int
	boundaries []*Matrix // boundaries[k-1] is ∂_k
}

// NewChainComplex validates shapes and assembles the complex: counts[k] is
// the number of k-cells, boundaries[k-1] the matrix of ∂_k with counts[k-1]
// rows and counts[k] columns.
func NewChainComplex(counts []int, boundaries []*Matrix) (*ChainComplex, error) {
	if len(boundaries) != len(counts)-1 {
		return nil, fmt.Errorf("%w: %d cell counts but %d boundary matrices",
			ErrShape, len(counts), len(boundaries))
	}
	for k := 1; k < len(counts); k++ {
		d := boundaries[k-1]
		if d.Rows() != counts[k-1] || d.Cols() != counts[k] {
			return nil, fmt.Errorf("%w: ∂_%d is %d×%d, want %d×%d",
				ErrShape, k, d.Rows(), d.Cols(), counts[k-1], counts[k])
		}
	}
	cc := &ChainComplex{
		counts:     make([]int, len(counts)),
		boundaries: make([]*Matrix, len(boundaries)),
	}
	copy(cc.counts, counts)
	for i, d := range boundaries {
		cc.boundaries[i] = d.Clone()
	}
	return cc, nil
}

// Dimension returns the top dimension n of the complex.
func (c *ChainComplex) Dimension() int { return len(c.counts) - 1 }

// CellCount returns the number of k-cells, zero outside 0..Dimension().
func (c *ChainComplex) CellCount(k int) int {
	if k < 0 || k >= len(c.counts) {
		return 0
	}
	return c.counts[k]
}

// Validate checks ∂_{k} ∘ ∂_{k+1} = 0 for every k, as matrix products.
func (c *ChainComplex) Validate() error {
	for k := 1; k+1 <= c.Dimension(); k++ {
		if !c.boundaries[k-1].Mul(c.boundaries[k]).IsZero() {
			return fmt.Errorf("homology: ∂_%d ∘ ∂_%d is not zero", k, k+1)
		}
	}
	return nil
}

// Group is a finitely generated abelian group: ℤ^Rank ⊕ ⊕_i ℤ/Torsion[i],
// with each torsion invariant dividing the next.
type Group struct {
	Rank    int
	Torsion []int64
}

// IsTrivial reports whether the group vanishes.
func (g Group) IsTrivial() bool { return g.Rank == 0 && len(g.Torsion) == 0 }

// String renders the group in the usual ℤ^r ⊕ ℤ/n notation.
func (g Group) String() string {
	if g.IsTrivial() {
		return "0"
	}
	s := ""
	switch {
	case g.Rank == 1:
		s = "Z"
	case g.Rank > 1:
		s = fmt.Sprintf("Z^%d", g.Rank)
	}
	for _, t := range g.Torsion {
		if s != "" {
			s += " + "
		}
		s += fmt.Sprintf("Z/%d", t)
	}
	return s
}

// Group computes H_k = ker ∂_k / im ∂_{k+1}. The free rank is
// n_k − rank ∂_k − rank ∂_{k+1}; the torsion invariants are the Smith
// factors of ∂_{k+1} exceeding one.
func (c *ChainComplex) Group(k int, opts ...Option) Group {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if k < 0 || k > c.Dimension() {
		return Group{}
	}
	out := c.factors(k)     // Smith factors of ∂_k
	in := c.factors(k + 1)  // Smith factors of ∂_{k+1}
	rank := c.counts[k] - len(out) - len(in)
	var torsion []int64
	for _, f := range in {
		if f > 1 {
			torsion = append(torsion, f)
		}
	}
	if o.reduced && k == 0 && rank > 0 {
		rank--
	}
	return Group{Rank: rank, Torsion: torsion}
}

// Groups computes H_0..H_n.
func (c *ChainComplex) Groups(opts ...Option) []Group {
	out := make([]Group, c.Dimension()+1)
	for k := range out {
		out[k] = c.Group(k, opts...)
	}
	return out
}

// factors returns the Smith invariant factors of ∂_k, empty outside the
// complex.
func (c *ChainComplex) factors(k int) []int64 {
	if k < 1 || k > c.Dimension() {
		return nil
	}
	return SmithNormalForm(c.boundaries[k-1])
}
