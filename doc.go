// Package msttrace computes Minimum Spanning Trees with Kruskal's algorithm
// and exposes the step-by-step decision trace of the run: for every edge
// considered, whether it was accepted or rejected, why, and the cumulative
// MST state at that point — an ordered, replayable history instead of a
// bare result set.
//
// The module is organized into small focused packages:
//
//	core/      — Graph model: named vertices on dense indices, weighted
//	             undirected edges in input order, a stable weight-sorted
//	             view, and the Disjoint-Set Forest (union-find)
//	kruskal/   — the step-trace engine: Run → Trace{Steps, MSTWeight},
//	             plus a snapshot-free MST convenience
//	graphtext/ — the parsing boundary for the textual "V E" graph format
//	             and JSON serialization of traces
//	cmd/msttrace — CLI: trace a graph from a file or stdin, or serve the
//	             contract over HTTP
//
// Quick example:
//
//	g, err := graphtext.ParseString("3 3\nA B C\nab A B 1\nbc B C 2\nac A C 4")
//	if err != nil { ... }
//	tr, err := kruskal.Run(g)
//	if err != nil { ... }
//	for _, s := range tr.Steps {
//	    fmt.Println(s.ConsideredEdgeID, s.Action, s.Reason, s.TotalWeight)
//	}
//
// Every computation is single-shot and single-threaded: one call, one fresh
// Graph, one fresh forest, a read-only Trace out. Embedding contexts that
// serve multiple logical computations construct one Graph per computation.
package msttrace
