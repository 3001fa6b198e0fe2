// SPDX-License-Identifier: MIT
//
// File: enumerator.go
// Role: reverse-colex k-combination generator with in-place successor steps.
// Policy:
//   - One Enumerator per enumeration; it is not safe for concurrent use.
//   - The combination buffer is owned by the Enumerator and reused between
//     steps; callers that keep a combination must copy it.
//   - The generation path (single, unary or cascade) is selected once in New.

package combin

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidParameters is returned by New when (n, k) does not describe a
// valid combination space: n < 0, k < 0 or k > n.
var ErrInvalidParameters = errors.New("combin: invalid combination parameters")

// mode selects the successor rule chosen for (n, k).
type mode uint8

const (
	// modeSingle covers k == n and k == 0: exactly one combination.
	modeSingle mode = iota
	// modeUnary covers k == 1 < n: one slot walking from n-1 down to 0.
	modeUnary
	// modeCascade covers 2 <= k < n: the full odometer with cascade resets.
	modeCascade
)

// Enumerator produces every k-subset of {0..n-1} exactly once, as strictly
// increasing index slices, in reverse colexicographic order.
//
// The first combination is {n-k, ..., n-1}; the last is {0, ..., k-1}.
// Each step costs O(k) time and the Enumerator holds O(k) memory.
//
// Typical use:
//
//	e, err := combin.New(5, 3)
//	if err != nil { ... }
//	for e.Next() {
//		use(e.Combination())
//	}
type Enumerator struct {
	n, k    int
	mode    mode
	indices []int // current combination, strictly increasing
	pos     int   // cursor: lowest slot the odometer is working on
	started bool  // first combination already emitted
	done    bool  // sequence exhausted
	emitted int   // number of combinations emitted so far
}

// New validates (n, k) and returns an Enumerator positioned before the first
// combination.
//
// Errors:
//   - ErrInvalidParameters if n < 0, k < 0 or k > n.
//
// Complexity: O(k) time and memory.
func New(n, k int) (*Enumerator, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("n=%d k=%d: %w", n, k, ErrInvalidParameters)
	}

	e := &Enumerator{n: n, k: k, indices: make([]int, k)}
	switch {
	case k == n, k == 0:
		e.mode = modeSingle
	case k == 1:
		e.mode = modeUnary
	default:
		e.mode = modeCascade
	}

	// Highest values in every slot: {n-k, ..., n-1}.
	for i := range e.indices {
		e.indices[i] = n - k + i
	}

	return e, nil
}

// N returns the universe size.
func (e *Enumerator) N() int { return e.n }

// K returns the combination size.
func (e *Enumerator) K() int { return e.k }

// Count returns C(n, k), the total number of combinations the Enumerator emits.
func (e *Enumerator) Count() int { return Binomial(e.n, e.k) }

// Emitted returns how many combinations have been produced so far.
func (e *Enumerator) Emitted() int { return e.emitted }

// Combination returns the current combination. The slice is the Enumerator's
// internal buffer: it is only valid until the next call to Next and must not
// be modified.
func (e *Enumerator) Combination() []int { return e.indices }

// Next advances to the next combination and reports whether one is available.
// Once Next returns false it keeps returning false.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		e.emitted++

		return true
	}

	var ok bool
	switch e.mode {
	case modeSingle:
		ok = false
	case modeUnary:
		ok = e.stepUnary()
	case modeCascade:
		ok = e.stepCascade()
	}
	if !ok {
		e.done = true

		return false
	}
	e.emitted++

	return true
}

// All returns the remaining combinations as a sequence. Each yielded slice
// is the internal buffer (see Combination). The sequence can be ranged over
// once; a second range yields nothing.
func (e *Enumerator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for e.Next() {
			if !yield(e.indices) {
				return
			}
		}
	}
}

// stepUnary walks the single slot down towards 0.
func (e *Enumerator) stepUnary() bool {
	if e.indices[0] == 0 {
		return false
	}
	e.indices[0]--

	return true
}

// stepCascade performs one odometer step for 2 <= k < n.
//
// Slot i is "home" when indices[i] == i, its smallest legal value.
//  1. If the slot under the cursor is above home, step it down by one.
//  2. Otherwise, if the cursor is on the last slot, every slot is home and the
//     first combination {0..k-1} has already been emitted: stop.
//  3. Move the cursor up past every home slot to the first one that can move,
//     and step it down by one.
//  4. If that slot is still above home, pack every lower slot directly under
//     it (indices[i] = indices[pos] - (pos - i)) and return the cursor to 0.
func (e *Enumerator) stepCascade() bool {
	idx := e.indices

	if idx[e.pos] > e.pos {
		idx[e.pos]--

		return true
	}
	if e.pos == e.k-1 {
		return false
	}

	e.pos++
	for e.pos < e.k && idx[e.pos] == e.pos {
		e.pos++
	}
	if e.pos == e.k {
		// Unreachable while the slots stay strictly increasing.
		return false
	}

	idx[e.pos]--
	if idx[e.pos] != e.pos {
		for i := 0; i < e.pos; i++ {
			idx[i] = idx[e.pos] - (e.pos - i)
		}
		e.pos = 0
	}

	return true
}
