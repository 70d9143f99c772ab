// Package graphtext is the parsing and serialization boundary of msttrace:
// it turns the textual graph description into a validated *core.Graph and a
// finished trace into its JSON wire form.
//
// Input Format
//
// A whitespace-delimited token stream (newlines are not significant):
//
//	V E
//	<V vertex-name tokens>
//	<E lines, each: edgeId src dst weight>
//
// V and E are non-negative integers; names and edge IDs are whitespace-free
// tokens; weight is an integer, possibly negative. Fractional weights are a
// producer concern — whoever serializes a graph coerces them to integers
// before the text reaches this boundary.
//
// Validation
//
// Parse is the fail-fast gate the core model relies on: malformed input is a
// hard failure before any graph construction, and a successfully parsed
// Graph upholds every structural invariant the engine assumes. Checked here:
//
//   - header present, integral, non-negative (ErrBadHeader);
//   - exactly V names and E edge records (ErrTruncated, ErrTrailingInput);
//   - integral weights (ErrBadWeight);
//   - unique names and edge IDs (wrapping core.ErrDuplicateVertex /
//     core.ErrDuplicateEdge);
//   - edge endpoints resolving to declared vertices (ErrUnknownEndpoint).
//
// The last check deliberately lives here and not in the engine: the engine's
// output contract folds "unknown endpoint" into the same reject/"cycle"
// signal as a genuine cycle, so catching the mistake at the boundary keeps
// that ambiguity out of well-formed traces entirely.
//
// Output
//
// EncodeTrace / TraceJSON emit the trace contract consumers replay:
//
//	{"steps":[{"consideredEdgeId":...,"action":"accept"|"reject",
//	  "reason":"ok"|"cycle","totalWeight":N,
//	  "mstEdgeIds":[...],"rejectedEdgeIds":[...]}, ...],
//	 "mstWeight":N}
//
// RunJSON bundles parse → trace → encode into the single text-in/JSON-out
// call a hosting boundary needs.
package graphtext
