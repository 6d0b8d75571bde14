package simplex

import (
	"sort"
	"strconv"
	"strings"
)

// Vertex is an integer coordinate tuple in ℤ^d.
type Vertex []int

// NewVertex builds a Vertex from the given coordinates.
func NewVertex(coords ...int) Vertex {
	v := make(Vertex, len(coords))
	copy(v, coords)
	return v
}

// Key returns the canonical string form of v, e.g. "0,1,2".
// Keys are unique per coordinate tuple and are used as map keys throughout.
func (v Vertex) Key() string {
	var sb strings.Builder
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// Clone returns an independent copy of v.
func (v Vertex) Clone() Vertex {
	w := make(Vertex, len(v))
	copy(w, v)
	return w
}

// Equal reports whether v and w have identical coordinates.
func (v Vertex) Equal(w Vertex) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// Compare orders vertices lexicographically by coordinates.
// It returns -1 if v < w, 0 if equal, +1 if v > w.
func Compare(v, w Vertex) int {
	n := len(v)
	if len(w) < n {
		n = len(w)
	}
	for i := 0; i < n; i++ {
		switch {
		case v[i] < w[i]:
			return -1
		case v[i] > w[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(w):
		return -1
	case len(v) > len(w):
		return 1
	}
	return 0
}

// Simplex is an ordered sequence of distinct vertices.
// A Simplex with k+1 vertices is a k-simplex; the empty Simplex is the
// rank-0 augmentation cell.
type Simplex []Vertex

// New builds a Simplex from the given vertices, copying each one.
func New(vertices ...Vertex) Simplex {
	s := make(Simplex, len(vertices))
	for i, v := range vertices {
		s[i] = v.Clone()
	}
	return s
}

// Rank returns the number of vertices. The simplex table in package builder
// is keyed by rank, so Rank(vertex) == 1 and Rank(edge) == 2.
func (s Simplex) Rank() int { return len(s) }

// Dim returns the geometric dimension, Rank()-1.
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns the canonical string form of the ordered simplex,
// e.g. "0,0|1,0|1,1". The empty simplex has the empty key.
func (s Simplex) Key() string {
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(v.Key())
	}
	return sb.String()
}

// Sorted returns a copy of s with vertices in lexicographic order.
// The result is the canonical form under which the Registry detects
// conflicting vertex orders.
func (s Simplex) Sorted() Simplex {
	t := s.Clone()
	sort.Slice(t, func(i, j int) bool { return Compare(t[i], t[j]) < 0 })
	return t
}

// CanonicalKey returns Sorted().Key(): the order-insensitive identity of the
// vertex set.
func (s Simplex) CanonicalKey() string { return s.Sorted().Key() }

// Clone returns an independent deep copy of s.
func (s Simplex) Clone() Simplex {
	t := make(Simplex, len(s))
	for i, v := range s {
		t[i] = v.Clone()
	}
	return t
}

// Equal reports whether s and t list the same vertices in the same order.
func (s Simplex) Equal(t Simplex) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if !s[i].Equal(t[i]) {
			return false
		}
	}
	return true
}
