// Package graphtext: the textual-format parser.
package graphtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/msttrace/core"
)

// Parse reads the whitespace-delimited graph description from r and returns
// a fully validated *core.Graph ready for the engine.
//
// Steps:
//  1. Read the V E header; both must be non-negative integers.
//  2. Read exactly V vertex names, assigning dense indices 0..V-1 in input
//     order; duplicates fail with core.ErrDuplicateVertex.
//  3. Read exactly E edge records (id src dst weight); duplicate IDs fail
//     with core.ErrDuplicateEdge, unresolvable endpoints with
//     ErrUnknownEndpoint, non-integer weights with ErrBadWeight.
//  4. Require end of input — trailing tokens fail with ErrTrailingInput.
//
// Any failure aborts before a Graph escapes; there are no partial results.
// Complexity: O(V + E).
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1. Header.
	v, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrBadHeader, err)
	}
	e, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: edge count: %v", ErrBadHeader, err)
	}
	if v < 0 || e < 0 {
		return nil, fmt.Errorf("%w: counts must be non-negative (V=%d, E=%d)", ErrBadHeader, v, e)
	}

	g := core.NewGraph(v, e)

	// 2. Vertex names, indexed by input position.
	for i := 0; i < v; i++ {
		name, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d of %d", ErrTruncated, i+1, v)
		}
		if err = g.AddVertex(name, i); err != nil {
			return nil, err
		}
	}

	// 3. Edge records.
	for i := 0; i < e; i++ {
		id, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d of %d", ErrTruncated, i+1, e)
		}
		src, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q: src", ErrTruncated, id)
		}
		dst, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q: dst", ErrTruncated, id)
		}
		tok, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q: weight", ErrTruncated, id)
		}
		weight, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q: %q", ErrBadWeight, id, tok)
		}

		// Endpoint resolution happens at this boundary so the engine never
		// sees an edge it would have to fold into the "cycle" reason.
		if g.IndexOf(src) == core.IndexNotFound {
			return nil, fmt.Errorf("%w: edge %q: %q", ErrUnknownEndpoint, id, src)
		}
		if g.IndexOf(dst) == core.IndexNotFound {
			return nil, fmt.Errorf("%w: edge %q: %q", ErrUnknownEndpoint, id, dst)
		}

		if err = g.AddEdge(id, weight, src, dst); err != nil {
			return nil, err
		}
	}

	// 4. Nothing may follow the declared records.
	if sc.Scan() {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphtext: read: %w", err)
	}

	return g, nil
}

// ParseString is Parse over an in-memory description.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// nextToken returns the next whitespace-delimited token, or io.EOF-flavored
// failure when the stream is exhausted.
func nextToken(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", io.ErrUnexpectedEOF
	}

	return sc.Text(), nil
}

// nextInt reads one token and parses it as a decimal int.
func nextInt(sc *bufio.Scanner) (int, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(tok)
}
