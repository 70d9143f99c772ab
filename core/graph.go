// Package core: Graph mutation and query methods.
package core

import "fmt"

// AddVertex registers the name→index mapping for one vertex.
//
// The caller is responsible for supplying each index exactly once and for the
// overall contiguity of the index space [0, V); the parsing boundary enforces
// that before construction. AddVertex only rejects what its own bookkeeping
// detects for free: empty names (ErrEmptyVertexID), negative indices
// (ErrNegativeIndex), and names or indices registered twice (ErrDuplicateVertex).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string, index int) error {
	if name == "" {
		return ErrEmptyVertexID
	}
	if index < 0 {
		return fmt.Errorf("vertex %q: %w", name, ErrNegativeIndex)
	}
	if _, ok := g.index[name]; ok {
		return fmt.Errorf("vertex %q: %w", name, ErrDuplicateVertex)
	}

	// Grow the reverse map up to the requested index. Slots filled later by
	// their own AddVertex calls hold "" in the meantime.
	for len(g.names) <= index {
		g.names = append(g.names, "")
	}
	if g.names[index] != "" {
		return fmt.Errorf("index %d: %w", index, ErrDuplicateVertex)
	}

	g.index[name] = index
	g.names[index] = name

	return nil
}

// AddEdge appends one edge in input order.
//
// Endpoints are not resolved here: an edge naming an unknown vertex is stored
// as given and becomes inert during the MST run (it can never be accepted).
// Weights may be negative. Returns ErrEmptyEdgeID or ErrDuplicateEdge on a
// malformed ID; otherwise nil.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id string, weight int64, src, dst string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if _, ok := g.seen[id]; ok {
		return fmt.Errorf("edge %q: %w", id, ErrDuplicateEdge)
	}

	g.seen[id] = struct{}{}
	g.edges = append(g.edges, Edge{ID: id, Weight: weight, Src: src, Dst: dst})

	return nil
}

// IndexOf returns the dense index of the named vertex,
// or IndexNotFound (-1) when the name is unknown.
// Complexity: O(1).
func (g *Graph) IndexOf(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}

	return IndexNotFound
}

// VertexCount reports the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.index) }

// EdgeCount reports the number of registered edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns the vertex names in index order (0..V-1).
// The returned slice is a copy; mutating it does not affect the Graph.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Edges returns the edges in input order.
// The returned slice is a copy; mutating it does not affect the Graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SortedEdges returns the edges in non-decreasing weight order.
//
// Ties are broken by original input position: the sort is a stable bottom-up
// merge sort, so two runs over the same input always yield the same order.
// That determinism is a contract — step traces built on this ordering must be
// reproducible byte for byte. The stored input-order list is left untouched;
// each call returns a fresh slice.
// Complexity: O(E log E) time, O(E) extra space.
func (g *Graph) SortedEdges() []Edge {
	return sortEdgesByWeight(g.edges)
}

// MakeSets returns a fresh Disjoint-Set Forest with one singleton set per
// registered vertex index. Each MST run must call MakeSets anew: a forest is
// mutated destructively by Union and is not reusable afterward.
// Complexity: O(V).
func (g *Graph) MakeSets() *DisjointSet {
	return NewDisjointSet(len(g.index))
}
