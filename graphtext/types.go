// Package graphtext: sentinel errors of the parsing boundary.
package graphtext

import "errors"

// Sentinel errors returned by Parse and the encoding helpers. All are hard
// failures: no partial Graph or partial trace ever escapes this package.
var (
	// ErrBadHeader indicates a missing, non-integral, or negative V/E header.
	ErrBadHeader = errors.New("graphtext: malformed V E header")

	// ErrTruncated indicates the input ended before the declared number of
	// vertex names or edge records was read.
	ErrTruncated = errors.New("graphtext: input shorter than declared counts")

	// ErrTrailingInput indicates tokens remained after the declared E edge
	// records were consumed.
	ErrTrailingInput = errors.New("graphtext: unexpected tokens after last edge")

	// ErrBadWeight indicates an edge weight that is not an integer.
	ErrBadWeight = errors.New("graphtext: edge weight is not an integer")

	// ErrUnknownEndpoint indicates an edge referencing an undeclared vertex.
	ErrUnknownEndpoint = errors.New("graphtext: edge endpoint is not a declared vertex")

	// ErrNilTrace indicates a nil *kruskal.Trace was passed for encoding.
	ErrNilTrace = errors.New("graphtext: trace is nil")
)
