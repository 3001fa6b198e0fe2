// SPDX-License-Identifier: MIT

package combin

// Binomial returns C(n, k), the number of k-subsets of an n-element set.
// It returns 0 when k < 0, n < 0 or k > n.
//
// The multiplicative form keeps every intermediate value an exact integer:
// after step i the accumulator holds C(n-k+i+1, i+1).
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - k + i + 1) / (i + 1)
	}

	return c
}
