// Package core: Disjoint-Set Forest (union-find) over dense vertex indices.
package core

// DisjointSet tracks a partition of the indices [0, n) into disjoint sets,
// supporting near-constant-time "same set?" queries and merges.
//
// Invariants: parent always forms valid trees (every path reaches a root
// where parent[i] == i); rank[i] is a monotonically non-decreasing upper
// bound on the height of the tree rooted at i.
//
// A DisjointSet is owned by exactly one computation and mutated destructively
// by Find (path compression) and Union; build a fresh one per run.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet returns a forest of n singleton sets:
// parent[i] = i, rank[i] = 0 for every i in [0, n).
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len reports the number of elements the forest was built over.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Find returns the representative (root) of the set containing i.
//
// The walk is iterative with path halving: every visited element is
// re-pointed to its grandparent, so repeated lookups flatten the tree without
// the deep recursion a naive path-compressing find would need.
// The index must be in [0, Len()); callers resolve names to valid indices
// before reaching the forest.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing a and b using union by rank.
//
// Returns true if a merge occurred (the elements were in different sets) and
// false if they already shared a set — i.e. linking them would close a cycle.
// That boolean is the sole accept/reject signal Kruskal's algorithm consumes.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b int) bool {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		return false
	}

	// Attach the shorter tree under the taller one's root.
	if d.rank[rootA] < d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootA]++
	}

	return true
}
