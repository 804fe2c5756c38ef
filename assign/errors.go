// Package assign implements the first-fit spectrum assignment algorithms
// (C4): finding the lowest-id contiguous slot range that satisfies
// availability constraints across a single path, two disjoint-or-shared
// routes, or a chain of bidirectional adjacency options.
package assign

import "errors"

// Sentinel errors returned by FirstFitForAdjacenciesBidi. FirstFit and
// FirstFitTwoRoutes pass through spectrum.ErrEmptyFiberSet for an empty
// path. The non-fatal outcomes (no contiguous range found, a repeated fiber
// in the requested path) are signalled by returning a nil assignment, never
// an error.
var (
	// ErrRequiresBidirectional indicates a bidirectional-adjacency query
	// received a fiber with no bidirectional partner.
	ErrRequiresBidirectional = errors.New("assign: adjacency option is not bidirectional")

	// ErrDuplicateFiberOption indicates the same fiber (or its
	// bidirectional pair) was offered as a candidate more than once across
	// the adjacency chain.
	ErrDuplicateFiberOption = errors.New("assign: fiber offered as an option more than once")
)
