// Package core: central types, sentinel errors, and the Graph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was supplied as a vertex name.
	ErrEmptyVertexID = errors.New("core: vertex name is empty")

	// ErrEmptyEdgeID indicates that an empty string was supplied as an edge ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateVertex indicates that a vertex name or index was registered twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates that an edge ID was registered twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNegativeIndex indicates that a vertex index below zero was supplied.
	ErrNegativeIndex = errors.New("core: vertex index is negative")
)

// IndexNotFound is returned by IndexOf when the queried vertex name is unknown.
const IndexNotFound = -1

// Edge is a weighted undirected edge between two named vertices.
//
// Src and Dst are interchangeable for connectivity purposes; the pair is kept
// in the orientation it was added with, so display layers can echo the input.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// Weight is the edge cost. Negative values are permitted: Kruskal's
	// correctness depends only on the ordering of weights, not their sign.
	Weight int64

	// Src is the vertex name of one endpoint, as given.
	Src string

	// Dst is the vertex name of the other endpoint, as given.
	Dst string
}

// Graph holds the vertex index map and the edge list of one computation.
//
// Vertices map names to dense indices in [0, V); edges stay in input order.
// Graph is not safe for concurrent mutation — one computation, one Graph.
type Graph struct {
	index map[string]int       // vertex name → dense index
	names []string             // dense index → vertex name
	edges []Edge               // edges in input order
	seen  map[string]struct{}  // edge IDs already registered
}

// NewGraph returns an empty Graph with storage preallocated for the declared
// vertex and edge counts. The counts are capacity hints only; the Graph does
// not enforce them (the parsing boundary does).
// Complexity: O(V + E) allocation.
func NewGraph(vertexCount, edgeCount int) *Graph {
	if vertexCount < 0 {
		vertexCount = 0
	}
	if edgeCount < 0 {
		edgeCount = 0
	}

	return &Graph{
		index: make(map[string]int, vertexCount),
		names: make([]string, 0, vertexCount),
		edges: make([]Edge, 0, edgeCount),
		seen:  make(map[string]struct{}, edgeCount),
	}
}
