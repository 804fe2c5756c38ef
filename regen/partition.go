package regen

import "github.com/osmcore/osm/internal/netmodel"

// RegenerationPoints packs fibers, left to right, into the fewest segments
// such that each segment's total length never exceeds maxKm: a new segment
// starts whenever the next fiber would push the running total past maxKm.
// Returns ErrFiberTooLong if any single fiber's own length already exceeds
// maxKm, since no segment could ever hold it.
func RegenerationPoints(fibers []netmodel.Fiber, maxKm float64) ([][]netmodel.Fiber, error) {
	if len(fibers) == 0 {
		return nil, nil
	}

	var segments [][]netmodel.Fiber
	var current []netmodel.Fiber
	var currentKm float64

	for _, f := range fibers {
		length := f.LengthKm()
		if length > maxKm {
			return nil, ErrFiberTooLong
		}

		if len(current) > 0 && currentKm+length > maxKm {
			segments = append(segments, current)
			current = nil
			currentKm = 0
		}

		current = append(current, f)
		currentKm += length
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments, nil
}
