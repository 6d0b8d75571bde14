package homology

import (
	"strconv"
	"strings"
)

// Matrix is a dense integer matrix in row-major layout with the explicit
// index formula i*cols + j. It is the exchange format between the
// cell-complex packages and the Smith normal form.
type Matrix struct {
	rows, cols int
	data       []int64
}

// NewMatrix returns a zero-initialized rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]int64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) int64 { return m.data[i*m.cols+j] }

// Set assigns the entry at row i, column j.
func (m *Matrix) Set(i, j int, v int64) { m.data[i*m.cols+j] = v }

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]int64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// IsZero reports whether every entry vanishes.
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Mul returns the matrix product m·n. Panics if the inner dimensions
// disagree; the chain-complex constructor has already checked shapes.
func (m *Matrix) Mul(n *Matrix) *Matrix {
	if m.cols != n.rows {
		panic("homology: dimension mismatch in Mul")
	}
	p := NewMatrix(m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < n.cols; j++ {
				p.Set(i, j, p.At(i, j)+a*n.At(k, j))
			}
		}
	}
	return p
}

// String renders the matrix row by row, for diagnostics and tests.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(m.At(i, j), 10))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// row/column elementary operations used by the Smith normal form.

func (m *Matrix) swapRows(a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[a*m.cols+j], m.data[b*m.cols+j] = m.data[b*m.cols+j], m.data[a*m.cols+j]
	}
}

func (m *Matrix) swapCols(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+a], m.data[i*m.cols+b] = m.data[i*m.cols+b], m.data[i*m.cols+a]
	}
}

// addRowMultiple performs row_dst += q * row_src.
func (m *Matrix) addRowMultiple(dst, src int, q int64) {
	if q == 0 {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[dst*m.cols+j] += q * m.data[src*m.cols+j]
	}
}

// addColMultiple performs col_dst += q * col_src.
func (m *Matrix) addColMultiple(dst, src int, q int64) {
	if q == 0 {
		return
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+dst] += q * m.data[i*m.cols+src]
	}
}
