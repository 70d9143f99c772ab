// Package core defines the Graph model that the msttrace engine operates on:
// named vertices mapped to dense integer indices, weighted undirected edges
// kept in input order, a stable weight-ordered view of those edges, and a
// Disjoint-Set Forest (union-find) over the vertex indices.
//
// What & Why
//
//   - Vertices are registered as name→index pairs. The index space is a dense
//     contiguous range [0, V), which lets the Disjoint-Set Forest run on plain
//     slices instead of maps — no hashing on the hot path of Find/Union.
//
//   - Edges carry a caller-supplied unique ID, an int64 weight, and their two
//     endpoint names. Edges are undirected for connectivity purposes but keep
//     the (Src, Dst) orientation they were given, so a consumer replaying a
//     computation can display them exactly as entered.
//
//   - SortedEdges returns the edges in non-decreasing weight order with ties
//     broken by original input position. The sort is an explicit bottom-up
//     merge sort: stability is a contract here, not an implementation detail,
//     because downstream step traces must be byte-identical across runs and
//     across implementations.
//
//   - DisjointSet implements union by rank with iterative path compression.
//     Union reports whether a merge occurred, which is the sole accept/reject
//     signal Kruskal's algorithm needs.
//
// Validation Boundary
//
// The model performs only the checks it gets for free (empty IDs, duplicate
// names/IDs detected by its own maps). Structural guarantees — V/E counts
// matching the declared header, index contiguity, endpoint resolvability —
// belong to the parsing boundary (package graphtext). Code constructing a
// Graph directly assumes those guarantees itself.
//
// Concurrency
//
// A Graph is not safe for concurrent mutation. One MST computation owns one
// Graph and one DisjointSet; a DisjointSet is consumed by the run that made
// it and must be re-created (MakeSets) for the next run.
//
// Complexity
//
//	AddVertex / AddEdge / IndexOf : O(1) amortized
//	SortedEdges                   : O(E log E) time, O(E) extra space
//	Find / Union                  : O(α(V)) amortized (inverse Ackermann)
package core
