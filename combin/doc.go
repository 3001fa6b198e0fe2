// Package combin enumerates k-combinations of {0..n-1} in reverse
// colexicographic order, one combination at a time, without materialising
// the list of subsets.
//
// What & Why
//
//   - A combination is a strictly increasing []int of length k with values in
//     [0, n). Colex order compares two combinations by their largest element
//     first; reverse colex therefore starts at {n-k, ..., n-1} and ends at
//     {0, ..., k-1}.
//   - graphworks uses it to walk every edge set of a fixed size: the universe
//     is the list of edge slots of a vertex count, and each combination says
//     which slots are present.
//
// Algorithm
//
// The Enumerator keeps the current combination and a cursor. Each step either
// lowers the cursor slot by one, or moves the cursor to the first slot that is
// not at its minimum ("home") value, lowers it, and packs all lower slots
// directly beneath it. Every step is O(k) and no other memory is used.
//
// Three paths are chosen up front:
//
//   - k == n or k == 0: one combination, emitted once.
//   - k == 1: the single slot walks n-1, n-2, ..., 0.
//   - otherwise: the cascading odometer.
//
// Usage
//
//	e, err := combin.New(4, 2)
//	if err != nil {
//		return err
//	}
//	for c := range e.All() {
//		fmt.Println(c) // [2 3] [1 3] [0 3] [1 2] [0 2] [0 1]
//	}
//
// The slice handed out by Combination and All is reused between steps;
// copy it (slices.Clone) to keep it.
//
// Errors:
//
//	ErrInvalidParameters - n < 0, k < 0 or k > n; reported by New before any output.
package combin
