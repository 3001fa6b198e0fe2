// SPDX-License-Identifier: MIT
//
// File: textio.go
// Role: plain-text matrix formats.
//
// Input (weight matrix):
//
//	V
//	a00 a01 ... a0(V-1)
//	...
//
// Tokens are whitespace separated; line breaks carry no meaning.
//
// Output (0/1 adjacency, one graph):
//
//	V
//	0110
//	1000
//	...
//	<blank line>

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MaxReadDimension bounds the dimension Read accepts, so a corrupt header
// cannot trigger a huge allocation.
const MaxReadDimension = 1 << 14

// Read parses a square weight matrix: a positive dimension V followed by V×V
// base-10 integers. Anything after the last value is ignored.
//
// Errors:
//   - ErrBadShape if V <= 0 or V > MaxReadDimension.
//   - ErrSyntax if a token is not an integer.
//   - ErrTruncated if fewer than V×V values follow.
//   - any error returned by r.
//
// Complexity: O(V²).
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("reading %s: %w", what, ErrTruncated)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %q: %w", what, sc.Text(), ErrSyntax)
		}
		return v, nil
	}

	n, err := next("dimension")
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > MaxReadDimension {
		return nil, fmt.Errorf("dimension %d: %w", n, ErrBadShape)
	}

	m, err := NewSquare(int(n))
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		v, err := next(fmt.Sprintf("cell (%d,%d)", i/m.c, i%m.c))
		if err != nil {
			return nil, err
		}
		m.data[i] = v
	}

	return m, nil
}

// AppendBits appends the 0/1 text rendering of a square matrix to dst:
// the dimension on its own line, one line of '0'/'1' characters per row
// (non-zero cells print as '1'), and a terminating blank line.
// Complexity: O(V²).
func AppendBits(dst []byte, m *Dense) ([]byte, error) {
	if m == nil {
		return dst, ErrNilMatrix
	}
	if !m.Square() {
		return dst, ErrNonSquare
	}

	dst = strconv.AppendInt(dst, int64(m.r), 10)
	dst = append(dst, '\n')
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if v != 0 {
				dst = append(dst, '1')
			} else {
				dst = append(dst, '0')
			}
		}
		dst = append(dst, '\n')
	}

	return append(dst, '\n'), nil
}

// WriteBits writes the AppendBits rendering of m to w.
func WriteBits(w io.Writer, m *Dense) error {
	buf, err := AppendBits(make([]byte, 0, bitsSize(m)), m)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)

	return err
}

// Write renders m as a weight matrix in the Read format.
func Write(w io.Writer, m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.Square() {
		return ErrNonSquare
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", m.r)
	for i := 0; i < m.r; i++ {
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(v, 10))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// bitsSize estimates the AppendBits output length to size the buffer once.
func bitsSize(m *Dense) int {
	if m == nil {
		return 0
	}

	return 8 + m.r*(m.c+1) + 1
}
