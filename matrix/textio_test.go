// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphworks/matrix"
)

// TestRead_Valid parses a 4×4 weight matrix spread over irregular whitespace.
func TestRead_Valid(t *testing.T) {
	in := "4\n0 1 4 0\n1 0 2 3\n4 2\t0 1\n\n0 3 1 0 trailing"
	m, err := matrix.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 1, 4, 0},
		{1, 0, 2, 3},
		{4, 2, 0, 1},
		{0, 3, 1, 0},
	}, m.ToRows())
}

// TestRead_Errors maps malformed inputs to sentinels.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", matrix.ErrTruncated},
		{"zero dimension", "0", matrix.ErrBadShape},
		{"negative dimension", "-2 1 1 1 1", matrix.ErrBadShape},
		{"huge dimension", "999999999", matrix.ErrBadShape},
		{"bad header", "x", matrix.ErrSyntax},
		{"bad cell", "2\n0 1\n1 y", matrix.ErrSyntax},
		{"short", "3\n0 1 1\n1 0", matrix.ErrTruncated},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := matrix.Read(strings.NewReader(c.in))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestRead_ReaderError propagates I/O failures unchanged.
func TestRead_ReaderError(t *testing.T) {
	_, err := matrix.Read(failingReader{})
	require.EqualError(t, err, "disk on fire")
}

// TestWriteBits renders the generated-graph format.
func TestWriteBits(t *testing.T) {
	m, err := matrix.FromRows([][]int64{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteBits(&buf, m))
	assert.Equal(t, "3\n011\n100\n100\n\n", buf.String())

	// Weights collapse to 1.
	w, _ := matrix.FromRows([][]int64{{0, 7}, {7, 0}})
	out, err := matrix.AppendBits([]byte("x"), w)
	require.NoError(t, err)
	assert.Equal(t, "x2\n01\n10\n\n", string(out))
}

// TestWriteBits_Errors rejects nil and non-square inputs.
func TestWriteBits_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, matrix.WriteBits(&buf, nil), matrix.ErrNilMatrix)

	r, _ := matrix.NewDense(1, 2)
	assert.ErrorIs(t, matrix.WriteBits(&buf, r), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.Write(&buf, r), matrix.ErrNonSquare)
	assert.Zero(t, buf.Len())
}

// TestWrite_ReadRoundTrip writes a weight matrix and reads it back.
func TestWrite_ReadRoundTrip(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, -3}, {-3, 12}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, m))
	assert.Equal(t, "2\n0 -3\n-3 12\n", buf.String())

	back, err := matrix.Read(&buf)
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}
