// Package kruskal: the step-trace engine and the plain MST convenience.
package kruskal

import "github.com/katalvlaran/msttrace/core"

// Run executes Kruskal's algorithm over g and returns the full decision
// trace: one Step per edge in stable weight order, plus the final MST weight.
//
// Steps:
//  1. Take the stable weight-sorted edge view and a fresh Disjoint-Set
//     Forest over all registered vertices.
//  2. For each edge, resolve both endpoints. If either is unknown, the edge
//     is rejected (reason "cycle" — the contract's pass-through default).
//  3. Otherwise Union the endpoint sets: a merge means accept (append to the
//     MST list, add the weight), no merge means reject (a cycle would form).
//  4. Emit a Step carrying independent snapshots of the cumulative accepted
//     and rejected ID lists and the running total.
//
// A disconnected graph produces a minimum spanning forest; every edge still
// receives its step. The engine never fails on a structurally valid Graph —
// the only error is ErrNilGraph.
//
// Complexity: O(E log E + α(V)·E) time; O(E²) space for the snapshots.
func Run(g *core.Graph) (*Trace, error) {
	// 1. Validate the single failure mode up front.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Sorted edge view and a fresh forest; both are owned by this run.
	edges := g.SortedEdges()
	forest := g.MakeSets()

	// 3. Cumulative state: accepted IDs, rejected IDs, running total.
	mstIDs := make([]string, 0, len(edges))
	rejectedIDs := make([]string, 0, len(edges))
	var total int64

	// Steps is non-nil even for zero edges, so an empty trace serializes
	// as "steps":[] rather than null.
	steps := make([]Step, 0, len(edges))

	// 4. Single pass in sorted order, one Step per edge.
	for _, e := range edges {
		a := g.IndexOf(e.Src)
		b := g.IndexOf(e.Dst)

		// An unresolvable endpoint can never be accepted; a valid pair is
		// accepted exactly when Union reports a genuine merge.
		accepted := false
		if a != core.IndexNotFound && b != core.IndexNotFound {
			accepted = forest.Union(a, b)
		}

		action, reason := ActionReject, ReasonCycle
		if accepted {
			action, reason = ActionAccept, ReasonOK
			mstIDs = append(mstIDs, e.ID)
			total += e.Weight
		} else {
			rejectedIDs = append(rejectedIDs, e.ID)
		}

		steps = append(steps, Step{
			ConsideredEdgeID: e.ID,
			Action:           action,
			Reason:           reason,
			TotalWeight:      total,
			MSTEdgeIDs:       snapshot(mstIDs),
			RejectedEdgeIDs:  snapshot(rejectedIDs),
		})
	}

	return &Trace{Steps: steps, MSTWeight: total}, nil
}

// MST runs the same sweep as Run without building step records: it returns
// the accepted edges in acceptance order and their total weight.
//
// Disconnected input yields the minimum spanning forest of its components —
// no error, matching Run. The only error is ErrNilGraph.
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func MST(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	forest := g.MakeSets()
	mst := make([]core.Edge, 0, g.VertexCount())
	var total int64

	for _, e := range g.SortedEdges() {
		a := g.IndexOf(e.Src)
		b := g.IndexOf(e.Dst)
		if a == core.IndexNotFound || b == core.IndexNotFound {
			continue
		}
		if forest.Union(a, b) {
			mst = append(mst, e)
			total += e.Weight
		}
	}

	return mst, total, nil
}

// snapshot returns an independent copy of ids. Emitted steps must own their
// lists: later appends to the engine's cumulative slices may reallocate or,
// worse, overwrite shared backing arrays.
func snapshot(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}
