package simplex

import "sort"

// Registry interns simplices and enforces the global vertex-order invariant:
// each canonical key (sorted vertex tuple) maps to at most one accepted
// vertex order for the lifetime of the registry.
//
// A Registry is deliberately order-of-calls dependent — the first submitted
// order wins — so that an accidental double orientation is detected rather
// than silently resolved. It is scoped to one builder instance, never a
// process-wide singleton, so independent complexes can coexist (the search
// in package triangulate clones one registry per branch).
//
// Registry is not safe for concurrent use; the whole library is
// single-threaded by design.
type Registry struct {
	canon map[string]Simplex // canonical key -> accepted order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{canon: make(map[string]Simplex)}
}

// Intern records the vertex order of s for its canonical key, or checks it
// against the already recorded order.
//
// On first sight the given order becomes canonical and is returned.
// On a repeat with the identical order, the recorded simplex is returned
// (idempotent). On a repeat with a different order, Intern returns a
// *VertexOrderError naming both orders and records nothing.
func (r *Registry) Intern(s Simplex) (Simplex, error) {
	key := s.CanonicalKey()
	prev, ok := r.canon[key]
	if !ok {
		stored := s.Clone()
		r.canon[key] = stored
		return stored, nil
	}
	if !prev.Equal(s) {
		return nil, &VertexOrderError{Previous: prev, Given: s}
	}
	return prev, nil
}

// Lookup returns the accepted order for the vertex set of s, if any.
func (r *Registry) Lookup(s Simplex) (Simplex, bool) {
	prev, ok := r.canon[s.CanonicalKey()]
	return prev, ok
}

// Len returns the number of distinct vertex sets seen so far.
func (r *Registry) Len() int { return len(r.canon) }

// Clone returns an independent deep copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{canon: make(map[string]Simplex, len(r.canon))}
	for key, s := range r.canon {
		c.canon[key] = s.Clone()
	}
	return c
}

// Keys returns the canonical keys in sorted order. Intended for diagnostics
// and tests.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.canon))
	for key := range r.canon {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
