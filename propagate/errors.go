// Package propagate builds the directed propagation graph a signal follows
// through an optical switching fabric, reporting every fiber it unavoidably
// reaches, the lasing loops it might sustain, and whether it stays
// multipath-free along its intended route.
package propagate

import "errors"

var (
	// ErrEmptyPath is returned by Analyze when given no fibers.
	ErrEmptyPath = errors.New("propagate: empty path")

	// ErrSignalNotReachingDrop is returned when the propagation graph never
	// connects the synthetic add vertex to the synthetic drop vertex.
	ErrSignalNotReachingDrop = errors.New("propagate: signal does not reach drop")
)
