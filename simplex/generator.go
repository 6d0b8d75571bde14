package simplex

// Generator is a vertex-to-vertex transformation, the building block of a
// finite symmetry group action. Generators must not mutate their argument.
type Generator func(Vertex) Vertex

// Translate returns a Generator shifting the given coordinate axis by
// amount. Translate(i, 0) is the identity on that axis.
func Translate(axis, amount int) Generator {
	return func(v Vertex) Vertex {
		w := v.Clone()
		w[axis] += amount
		return w
	}
}

// Permute returns a Generator reordering coordinates: the image w satisfies
// w[i] = v[perm[i]]. perm must be a permutation of 0..d-1.
func Permute(perm []int) Generator {
	p := make([]int, len(perm))
	copy(p, perm)
	return func(v Vertex) Vertex {
		w := make(Vertex, len(v))
		for i, j := range p {
			w[i] = v[j]
		}
		return w
	}
}

// Reflect returns a Generator mirroring the given axis within [0, size]:
// the image coordinate is size - v[axis].
func Reflect(axis, size int) Generator {
	return func(v Vertex) Vertex {
		w := v.Clone()
		w[axis] = size - v[axis]
		return w
	}
}

// Compose chains generators left to right: Compose(f, g)(v) == g(f(v)).
func Compose(gens ...Generator) Generator {
	return func(v Vertex) Vertex {
		w := v
		for _, gen := range gens {
			w = gen(w)
		}
		return w
	}
}

// Apply maps g over every vertex of s, preserving order.
func (g Generator) Apply(s Simplex) Simplex {
	t := make(Simplex, len(s))
	for i, v := range s {
		t[i] = g(v)
	}
	return t
}
