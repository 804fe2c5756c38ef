package spectrum

import "github.com/osmcore/osm/internal/netmodel"

// Report is a structured, machine-consumable snapshot of the manager's
// occupation state — not human-readable report formatting, just a value a
// caller (or our own diagnostic logging) can inspect without re-deriving it
// from the six indices.
type Report struct {
	LightpathCount   int
	OccupiedFibers   int
	OccupiedAddMods  int
	OccupiedDropMods int
	ClashingFibers   int
	Ok               bool
}

// Snapshot computes a Report over the manager's current state.
func (m *OpticalSpectrumManager) Snapshot() Report {
	fibers := make(map[netmodel.Fiber]struct{})
	for _, f := range m.legitFiber.ElementsWithAnyOccupation() {
		fibers[f] = struct{}{}
	}
	for _, f := range m.wasteFiber.ElementsWithAnyOccupation() {
		fibers[f] = struct{}{}
	}

	clashing := 0
	for f := range fibers {
		if !m.ClashingSlots(f).IsEmpty() {
			clashing++
		}
	}

	r := Report{
		LightpathCount:   len(m.records),
		OccupiedFibers:   len(fibers),
		OccupiedAddMods:  len(m.legitAdd.ElementsWithAnyOccupation()) + len(m.wasteAdd.ElementsWithAnyOccupation()),
		OccupiedDropMods: len(m.legitDrop.ElementsWithAnyOccupation()) + len(m.wasteDrop.ElementsWithAnyOccupation()),
		ClashingFibers:   clashing,
		Ok:               m.IsSpectrumOccupationOk(),
	}

	m.log.WithFields(map[string]interface{}{
		"lightpaths":      r.LightpathCount,
		"occupied_fibers": r.OccupiedFibers,
		"clashing_fibers": r.ClashingFibers,
		"ok":              r.Ok,
	}).Debug("spectrum: snapshot")

	return r
}
