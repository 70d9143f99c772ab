// Package core: stable bottom-up merge sort over edge weights.
//
// The standard library offers sort.SliceStable, but the ordering produced
// here is part of the package contract (equal-weight edges keep their input
// order in every run of every build), so the sort is spelled out rather than
// delegated: a bottom-up merge sort whose tie-break behavior is visible in
// the code itself.
package core

// sortEdgesByWeight returns a copy of edges ordered by non-decreasing Weight,
// equal weights keeping their relative input order.
//
// Steps:
//  1. Copy the input; lists of length < 2 are already sorted.
//  2. Merge runs of doubling width (1, 2, 4, ...) from src into dst.
//  3. Swap the buffers after each pass; the final src holds the result.
//
// Complexity: O(E log E) time, O(E) extra space. Never mutates its argument.
func sortEdgesByWeight(edges []Edge) []Edge {
	n := len(edges)
	src := make([]Edge, n)
	copy(src, edges)
	if n < 2 {
		return src
	}

	dst := make([]Edge, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRuns(dst, src, lo, mid, hi)
		}
		src, dst = dst, src
	}

	return src
}

// mergeRuns merges the sorted runs src[lo:mid] and src[mid:hi] into dst[lo:hi].
// On equal weights the left run wins, which is what makes the sort stable.
func mergeRuns(dst, src []Edge, lo, mid, hi int) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		if i < mid && (j >= hi || src[i].Weight <= src[j].Weight) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
	}
}
