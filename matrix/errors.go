// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Context is attached with fmt.Errorf("ctx: %w", ErrX); callers match with
// errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape is returned by Read when the leading vertex count is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSyntax is returned by Read when a token is not a base-10 integer.
	ErrSyntax = errors.New("matrix: invalid integer")

	// ErrTruncated is returned by Read when the input ends before V×V values.
	ErrTruncated = errors.New("matrix: truncated input")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
