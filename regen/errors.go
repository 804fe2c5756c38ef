// Package regen implements the regeneration-distance partitioning helper:
// packing an ordered fiber sequence into maximal-length segments a signal
// could traverse before needing optical-electrical-optical regeneration.
package regen

import "errors"

// ErrFiberTooLong is returned when a single fiber's length alone exceeds
// maxKm, making it impossible to place in any segment.
var ErrFiberTooLong = errors.New("regen: fiber exceeds regeneration distance")
