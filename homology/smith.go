package homology

// SmithNormalForm returns the invariant factors of an integer matrix: the
// positive diagonal entries d_1 | d_2 | … of its Smith normal form, zeros
// trimmed. The number of factors is the rank of the matrix over ℚ, and the
// factors greater than one are the torsion invariants contributed by the
// matrix as a presentation of its cokernel.
//
// The input is not modified.
func SmithNormalForm(m *Matrix) []int64 {
	w := m.Clone()
	limit := w.rows
	if w.cols < limit {
		limit = w.cols
	}
	diag := make([]int64, 0, limit)
	for t := 0; t < limit; t++ {
		if !reduceAt(w, t) {
			break // submatrix is zero, diagonalization complete
		}
		diag = append(diag, abs64(w.At(t, t)))
	}
	return normalizeFactors(diag)
}

// reduceAt clears row t and column t beyond the pivot using elementary
// operations, re-pivoting on remainders until both are clean. Returns false
// when the trailing submatrix is entirely zero.
func reduceAt(w *Matrix, t int) bool {
	for {
		pi, pj, ok := smallestNonzero(w, t)
		if !ok {
			return false
		}
		w.swapRows(t, pi)
		w.swapCols(t, pj)
		pivot := w.At(t, t)
		dirty := false
		for i := t + 1; i < w.rows; i++ {
			if v := w.At(i, t); v != 0 {
				w.addRowMultiple(i, t, -(v / pivot))
				if w.At(i, t) != 0 {
					dirty = true // remainder smaller than pivot remains
				}
			}
		}
		for j := t + 1; j < w.cols; j++ {
			if v := w.At(t, j); v != 0 {
				w.addColMultiple(j, t, -(v / pivot))
				if w.At(t, j) != 0 {
					dirty = true
				}
			}
		}
		if !dirty {
			return true
		}
	}
}

// smallestNonzero locates the entry of minimal absolute value in the
// trailing submatrix starting at (t, t).
func smallestNonzero(w *Matrix, t int) (int, int, bool) {
	bi, bj := -1, -1
	var best int64
	for i := t; i < w.rows; i++ {
		for j := t; j < w.cols; j++ {
			v := abs64(w.At(i, j))
			if v != 0 && (bi < 0 || v < best) {
				bi, bj, best = i, j, v
			}
		}
	}
	return bi, bj, bi >= 0
}

// normalizeFactors turns an arbitrary diagonal into invariant factors:
// diag(a, b) is equivalent to diag(gcd(a,b), lcm(a,b)), so pairwise passes
// converge to the divisibility chain d_1 | d_2 | … .
func normalizeFactors(diag []int64) []int64 {
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(diag); i++ {
			if diag[i+1]%diag[i] != 0 {
				g := gcd64(diag[i], diag[i+1])
				diag[i], diag[i+1] = g, diag[i]/g*diag[i+1]
				changed = true
			}
		}
	}
	return diag
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return abs64(a)
}
