// Package kruskal computes Minimum Spanning Trees over a *core.Graph and —
// beyond the final edge set — emits the step-by-step decision trace of the
// algorithm: one record per considered edge stating whether it was accepted
// or rejected, why, and the running MST state at that point.
//
// What & Why
//
//   - Kruskal's algorithm sorts all edges by weight and sweeps them once,
//     accepting an edge exactly when its endpoints lie in different
//     components of a Disjoint-Set Forest. The accepted set is a minimum
//     spanning tree of each connected component (a minimum spanning forest
//     when the graph is disconnected).
//
//   - The trace restructures "compute and return a set" into "compute and
//     emit an ordered, replayable history of decisions". Consumers replay
//     Trace.Steps in order to animate or audit the run: each Step carries
//     the considered edge, the verdict, and cumulative snapshots of the
//     accepted and rejected edge IDs up to and including that step.
//
// Determinism
//
// Edges are considered in the stable weight order of core.Graph.SortedEdges:
// equal weights keep their input order, so a fixed input always produces a
// byte-identical trace. Exactly E steps are emitted, one per edge, in sorted
// order — never input order, unless the input happened to be sorted.
//
// Snapshots
//
// The MSTEdgeIDs and RejectedEdgeIDs of every Step are independent copies
// taken at emission time, not live views: holding an early Step while the
// run continues (or after it finishes) never shows later decisions.
//
// Edge Cases
//
//   - An edge whose endpoint does not resolve to a known vertex is never
//     accepted; it is recorded as a rejection with reason "cycle". This
//     pass-through default mirrors the established output contract, which
//     does not distinguish "unknown endpoint" from a genuine cycle. The
//     parsing boundary (package graphtext) rejects such edges before a
//     Graph is ever built, so the fallback only fires for callers that
//     construct a Graph by hand and skip validation.
//   - Self-loops resolve both endpoints to the same set and are rejected
//     with reason "cycle".
//   - A disconnected graph yields a spanning forest: every edge still gets
//     its accept/reject step, and MSTWeight sums only the accepted ones.
//   - Zero edges yield an empty step list and MSTWeight 0.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E²) space for a full trace
// (the cumulative per-step snapshots dominate); O(V + E) for MST, which
// skips the snapshots.
package kruskal
