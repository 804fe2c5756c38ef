package spectrum

import "errors"

// Sentinel errors returned by OpticalSpectrumManager queries. Callers match
// them with errors.Is; none of these are ever recovered locally. Mutation
// never fails on a clash (SlotIndex records clashes rather than rejecting
// them); allocate and release calls fail only on a foreign-network
// argument, and queries only on malformed arguments.
var (
	// ErrCrossNetwork indicates an entity argument belongs to a network
	// other than the one this manager was built against.
	ErrCrossNetwork = errors.New("spectrum: entity belongs to a different network")

	// ErrEmptyFiberSet indicates an availability query received no fibers.
	ErrEmptyFiberSet = errors.New("spectrum: fiber set must be non-empty")
)
