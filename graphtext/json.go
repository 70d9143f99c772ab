// Package graphtext: JSON serialization of traces and the one-call adapter.
package graphtext

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/msttrace/kruskal"
)

// EncodeTrace writes t to w as the compact JSON trace contract.
// Returns ErrNilTrace on nil input; otherwise only I/O errors.
func EncodeTrace(w io.Writer, t *kruskal.Trace) error {
	if t == nil {
		return ErrNilTrace
	}

	return json.NewEncoder(w).Encode(t)
}

// TraceJSON renders t as a compact JSON document.
func TraceJSON(t *kruskal.Trace) ([]byte, error) {
	if t == nil {
		return nil, ErrNilTrace
	}

	return json.Marshal(t)
}

// TraceJSONIndent renders t indented for human consumption.
func TraceJSONIndent(t *kruskal.Trace) ([]byte, error) {
	if t == nil {
		return nil, ErrNilTrace
	}

	return json.MarshalIndent(t, "", "  ")
}

// RunJSON is the complete text-in/JSON-out adapter: parse the description,
// run the step-trace engine, and render the trace. This is the single call a
// hosting boundary (CLI, HTTP handler, in-process embedding) marshals
// through; each invocation builds its own independent Graph.
func RunJSON(input string) (string, error) {
	g, err := ParseString(input)
	if err != nil {
		return "", err
	}

	tr, err := kruskal.Run(g)
	if err != nil {
		return "", err
	}

	out, err := TraceJSON(tr)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
