// Package matrix provides the integer matrix used for weight inputs and
// generated adjacency outputs.
// Dense stores elements in a flat row-major slice; bounds are fixed by the
// dimensions it was allocated with.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// FromRows copies a rectangular [][]int64 into a new Dense.
// Errors: ErrInvalidDimensions for an empty input, ErrIndexOutOfBounds when
// rows have different lengths.
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), m.c, ErrIndexOutOfBounds)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Square reports whether Rows() == Cols().
func (m *Dense) Square() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at (row, col) and (col, row).
// The matrix must be square.
// Complexity: O(1).
func (m *Dense) SetSymmetric(row, col int, v int64) error {
	if !m.Square() {
		return denseErrorf("SetSymmetric", row, col, ErrNonSquare)
	}
	if err := m.Set(row, col, v); err != nil {
		return err
	}

	return m.Set(col, row, v)
}

// Symmetric reports whether the matrix is square and equal to its transpose.
// Complexity: O(r*c).
func (m *Dense) Symmetric() bool {
	if !m.Square() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// ToRows returns a [][]int64 copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int64 {
	flat := make([]int64, len(m.data))
	copy(flat, m.data)
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
