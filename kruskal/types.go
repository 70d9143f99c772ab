// Package kruskal: trace record types and sentinel errors.
//
// The JSON field names on Step and Trace are the external output contract
// that replay/visualization consumers depend on; changing them is a breaking
// change even though the Go identifiers are free to follow Go conventions.
package kruskal

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to the engine.
// It is the only error the engine produces: a structurally valid model
// always yields a complete trace.
var ErrNilGraph = errors.New("kruskal: graph is nil")

// Action is the verdict recorded for one considered edge.
type Action string

const (
	// ActionAccept marks an edge that joined two components and entered the MST.
	ActionAccept Action = "accept"

	// ActionReject marks an edge that was not taken into the MST.
	ActionReject Action = "reject"
)

// Reason explains an Action.
type Reason string

const (
	// ReasonOK accompanies every accepted edge.
	ReasonOK Reason = "ok"

	// ReasonCycle accompanies every rejected edge: its endpoints already
	// shared a component (or an endpoint failed to resolve — the contract
	// folds that case into the same code, see the package documentation).
	ReasonCycle Reason = "cycle"
)

// Step records the decision for one considered edge together with the
// cumulative MST state after that decision.
//
// MSTEdgeIDs and RejectedEdgeIDs are snapshots owned by this Step — copies
// taken at emission time, ordered by processing (acceptance/rejection) order.
// Their combined length always equals the number of edges processed so far,
// and TotalWeight is the running sum of accepted weights up to this step.
type Step struct {
	// ConsideredEdgeID names the edge this step decided on.
	ConsideredEdgeID string `json:"consideredEdgeId"`

	// Action is the verdict: ActionAccept or ActionReject.
	Action Action `json:"action"`

	// Reason explains the verdict: ReasonOK or ReasonCycle.
	Reason Reason `json:"reason"`

	// TotalWeight is the cumulative accepted weight including this step.
	TotalWeight int64 `json:"totalWeight"`

	// MSTEdgeIDs lists all edges accepted so far, in acceptance order.
	MSTEdgeIDs []string `json:"mstEdgeIds"`

	// RejectedEdgeIDs lists all edges rejected so far, in rejection order.
	RejectedEdgeIDs []string `json:"rejectedEdgeIds"`
}

// Trace is the complete, read-only result of one engine run: exactly one
// Step per input edge, in sorted-weight order, plus the final total weight.
type Trace struct {
	// Steps holds one decision record per edge. Never nil; empty for a
	// graph with no edges.
	Steps []Step `json:"steps"`

	// MSTWeight is the authoritative final cost: the sum of all accepted
	// edge weights.
	MSTWeight int64 `json:"mstWeight"`
}
