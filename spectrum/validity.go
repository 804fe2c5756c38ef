package spectrum

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

// hasDuplicateFibers reports whether path lists the same fiber twice,
// violating the rule that a valid lightpath path never repeats a fiber.
func hasDuplicateFibers(path []netmodel.Fiber) bool {
	seen := make(map[string]struct{}, len(path))
	for _, f := range path {
		key := f.IdentityKey()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// IsAllocatable reports whether slots could be allocated on path (and the
// optional add/drop modules) without relying on clash detection: false if
// path repeats a fiber, if any fiber or module belongs to a different
// network than the one this manager was built from, or if any requested
// slot is invalid or already occupied on any fiber or module involved.
func (m *OpticalSpectrumManager) IsAllocatable(path []netmodel.Fiber, addMod, dropMod *netmodel.ModuleRef, slots *slotset.Set) bool {
	if hasDuplicateFibers(path) {
		return false
	}
	if m.checkForeignResources(addMod, dropMod, path) != nil {
		return false
	}
	if slots == nil || slots.IsEmpty() {
		return true
	}

	for _, f := range path {
		valid := f.ValidSlotIds()
		idle := m.IdleSlotIds(f)
		if !slots.Difference(valid).IsEmpty() {
			return false
		}
		if !slots.Difference(idle).IsEmpty() {
			return false
		}
	}
	if addMod != nil && !slots.Intersect(m.occupiedModuleSlots(*addMod, m.legitAdd, m.wasteAdd)).IsEmpty() {
		return false
	}
	if dropMod != nil && !slots.Intersect(m.occupiedModuleSlots(*dropMod, m.legitDrop, m.wasteDrop)).IsEmpty() {
		return false
	}
	return true
}

// occupiedModuleSlots has no notion of "validity" the way fibers do (a
// module is not spectrum-grid-limited): occupied simply means held by
// either signal kind.
func (m *OpticalSpectrumManager) occupiedModuleSlots(mod netmodel.ModuleRef, legit, waste *SlotIndex[netmodel.ModuleRef]) *slotset.Set {
	return legit.OccupiedSlotIds(mod).Union(waste.OccupiedSlotIds(mod))
}

// ClashingSlots returns the set of slot ids s on fiber such that the
// legitimate index at s holds more than one lightpath, or holds exactly one
// while the waste index at s is non-empty (a legitimate/waste collision).
func (m *OpticalSpectrumManager) ClashingSlots(fiber netmodel.Fiber) *slotset.Set {
	return clashingSlots(m.legitFiber, m.wasteFiber, fiber)
}

// ClashingSlotsInAddModule is ClashingSlots for an add module.
func (m *OpticalSpectrumManager) ClashingSlotsInAddModule(mod netmodel.ModuleRef) *slotset.Set {
	return clashingSlots(m.legitAdd, m.wasteAdd, mod)
}

// ClashingSlotsInDropModule is ClashingSlots for a drop module.
func (m *OpticalSpectrumManager) ClashingSlotsInDropModule(mod netmodel.ModuleRef) *slotset.Set {
	return clashingSlots(m.legitDrop, m.wasteDrop, mod)
}

func clashingSlots[E comparable](legit, waste *SlotIndex[E], e E) *slotset.Set {
	out := slotset.New()
	for _, occ := range legit.OccupiedSlots(e) {
		if len(occ.Lightpaths) > 1 {
			out.Add(occ.Slot)
			continue
		}
		if waste.occupantsAt(e, occ.Slot) != nil {
			out.Add(occ.Slot)
		}
	}
	return out
}

// IsSpectrumOccupationOk is the global validity predicate: every occupied
// (fiber, slot) must be valid for that fiber and held by exactly one
// lightpath, independently for the legitimate and waste indices, and every
// occupied (module, slot) likewise holds exactly one lightpath per index.
func (m *OpticalSpectrumManager) IsSpectrumOccupationOk() bool {
	for _, idx := range []*SlotIndex[netmodel.Fiber]{m.legitFiber, m.wasteFiber} {
		for _, f := range idx.ElementsWithAnyOccupation() {
			valid := f.ValidSlotIds()
			for _, occ := range idx.OccupiedSlots(f) {
				if !valid.Contains(occ.Slot) || len(occ.Lightpaths) != 1 {
					return false
				}
			}
		}
	}
	for _, idx := range []*SlotIndex[netmodel.ModuleRef]{m.legitAdd, m.wasteAdd, m.legitDrop, m.wasteDrop} {
		for _, mod := range idx.ElementsWithAnyOccupation() {
			for _, occ := range idx.OccupiedSlots(mod) {
				if len(occ.Lightpaths) != 1 {
					return false
				}
			}
		}
	}
	return true
}

// IsSpectrumOccupationOkFor is the per-lightpath validity predicate: for
// every fiber in lp's legitimate path, lp's occupied slots must all be
// valid for that fiber, and at each such slot the legitimate×fiber
// occupants must be exactly {lp} (a larger set means a clash). Same for
// lp's legitimate add/drop modules. A lightpath with no record is
// trivially ok.
func (m *OpticalSpectrumManager) IsSpectrumOccupationOkFor(lp netmodel.Lightpath) bool {
	rec, ok := m.records[lp]
	if !ok {
		return true
	}

	ok = true
	rec.slots.ForEachAscending(func(s int) bool {
		for _, f := range rec.legitFibers {
			if !f.ValidSlotIds().Contains(s) {
				ok = false
				return false
			}
			if !onlyOccupant(m.legitFiber, f, s, lp) {
				ok = false
				return false
			}
		}
		if rec.addModule != nil && !onlyOccupant(m.legitAdd, *rec.addModule, s, lp) {
			ok = false
			return false
		}
		if rec.dropModule != nil && !onlyOccupant(m.legitDrop, *rec.dropModule, s, lp) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func onlyOccupant[E comparable](idx *SlotIndex[E], e E, s int, lp netmodel.Lightpath) bool {
	occupants := idx.occupantsAt(e, s)
	if len(occupants) != 1 {
		return false
	}
	_, present := occupants[lp]
	return present
}
