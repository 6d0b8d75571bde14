package simplex

// Faces returns the codimension-1 faces of s in removal order: face i is s
// with vertex i deleted, the remaining vertices keeping their relative
// order. A rank-k simplex has k faces; the empty simplex has none.
func (s Simplex) Faces() []Simplex {
	faces := make([]Simplex, 0, len(s))
	for i := range s {
		face := make(Simplex, 0, len(s)-1)
		face = append(face, s[:i]...)
		face = append(face, s[i+1:]...)
		faces = append(faces, face.Clone())
	}
	return faces
}

// Face returns the i-th remove-one face of s.
func (s Simplex) Face(i int) Simplex {
	face := make(Simplex, 0, len(s)-1)
	face = append(face, s[:i]...)
	face = append(face, s[i+1:]...)
	return face.Clone()
}
