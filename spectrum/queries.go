package spectrum

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

// SignalKind distinguishes a lightpath's intended signal from the
// unintended ("waste") signal filterless switching propagates elsewhere.
type SignalKind int

const (
	Legitimate SignalKind = iota
	Waste
)

func (k SignalKind) String() string {
	if k == Waste {
		return "waste"
	}
	return "legitimate"
}

func (m *OpticalSpectrumManager) fiberIndex(kind SignalKind) *SlotIndex[netmodel.Fiber] {
	if kind == Waste {
		return m.wasteFiber
	}
	return m.legitFiber
}

func (m *OpticalSpectrumManager) addIndex(kind SignalKind) *SlotIndex[netmodel.ModuleRef] {
	if kind == Waste {
		return m.wasteAdd
	}
	return m.legitAdd
}

func (m *OpticalSpectrumManager) dropIndex(kind SignalKind) *SlotIndex[netmodel.ModuleRef] {
	if kind == Waste {
		return m.wasteDrop
	}
	return m.legitDrop
}

// OccupiedResources returns fiber's occupation for the given signal kind:
// every occupied slot id, ascending, with its occupying lightpaths.
func (m *OpticalSpectrumManager) OccupiedResources(fiber netmodel.Fiber, kind SignalKind) []SlotOccupants {
	return m.fiberIndex(kind).OccupiedSlots(fiber)
}

// OccupiedResourcesInAddModule is OccupiedResources for an add module.
func (m *OpticalSpectrumManager) OccupiedResourcesInAddModule(module netmodel.ModuleRef, kind SignalKind) []SlotOccupants {
	return m.addIndex(kind).OccupiedSlots(module)
}

// OccupiedResourcesInDropModule is OccupiedResources for a drop module.
func (m *OpticalSpectrumManager) OccupiedResourcesInDropModule(module netmodel.ModuleRef, kind SignalKind) []SlotOccupants {
	return m.dropIndex(kind).OccupiedSlots(module)
}

// OccupiedSlotIds is the union of legitimate and waste occupation on fiber.
func (m *OpticalSpectrumManager) OccupiedSlotIds(fiber netmodel.Fiber) *slotset.Set {
	return m.legitFiber.OccupiedSlotIds(fiber).Union(m.wasteFiber.OccupiedSlotIds(fiber))
}

// OccupiedSlotIdsInAddModule is OccupiedSlotIds for an add module.
func (m *OpticalSpectrumManager) OccupiedSlotIdsInAddModule(module netmodel.ModuleRef) *slotset.Set {
	return m.legitAdd.OccupiedSlotIds(module).Union(m.wasteAdd.OccupiedSlotIds(module))
}

// OccupiedSlotIdsInDropModule is OccupiedSlotIds for a drop module.
func (m *OpticalSpectrumManager) OccupiedSlotIdsInDropModule(module netmodel.ModuleRef) *slotset.Set {
	return m.legitDrop.OccupiedSlotIds(module).Union(m.wasteDrop.OccupiedSlotIds(module))
}

// IdleSlotIds is fiber.ValidSlotIds() minus OccupiedSlotIds(fiber).
func (m *OpticalSpectrumManager) IdleSlotIds(fiber netmodel.Fiber) *slotset.Set {
	return fiber.ValidSlotIds().Difference(m.OccupiedSlotIds(fiber))
}

// AvailableSlotIds is the intersection of IdleSlotIds over every fiber in
// fibers, minus any occupation on the optional add/drop modules. fibers
// must be non-empty (ErrEmptyFiberSet).
func (m *OpticalSpectrumManager) AvailableSlotIds(fibers []netmodel.Fiber, addMod, dropMod *netmodel.ModuleRef) (*slotset.Set, error) {
	if len(fibers) == 0 {
		return nil, ErrEmptyFiberSet
	}

	idles := make([]*slotset.Set, len(fibers))
	for i, f := range fibers {
		idles[i] = m.IdleSlotIds(f)
	}
	available := slotset.IntersectAll(idles)

	if addMod != nil {
		available = available.Difference(m.OccupiedSlotIdsInAddModule(*addMod))
	}
	if dropMod != nil {
		available = available.Difference(m.OccupiedSlotIdsInDropModule(*dropMod))
	}
	return available, nil
}

// IdleRangeInitialSlots returns every initial slot id s such that
// [s, s+n-1] are all idle on fiber.
func (m *OpticalSpectrumManager) IdleRangeInitialSlots(fiber netmodel.Fiber, n int) *slotset.Set {
	idle := m.IdleSlotIds(fiber)
	return ContiguousRunStarts(idle, n)
}

// ContiguousRunStarts returns every s in idle such that [s, s+n-1] are all
// members of idle. Exported so package assign can reuse it for candidate
// initial-slot enumeration without recomputing idle sets.
func ContiguousRunStarts(idle *slotset.Set, n int) *slotset.Set {
	out := slotset.New()
	if n <= 0 {
		return out
	}
	idle.ForEachAscending(func(s int) bool {
		ok := true
		for i := 1; i < n && ok; i++ {
			ok = idle.Contains(s + i)
		}
		if ok {
			out.Add(s)
		}
		return true
	})
	return out
}

// MinMaxValidSlotAcrossFibers intersects each fiber's valid slot range.
func MinMaxValidSlotAcrossFibers(fibers []netmodel.Fiber) (min, max int) {
	if len(fibers) == 0 {
		return 0, -1
	}
	min, max = fibers[0].MinMaxValidSlotID()
	for _, f := range fibers[1:] {
		fMin, fMax := f.MinMaxValidSlotID()
		if fMin > min {
			min = fMin
		}
		if fMax < max {
			max = fMax
		}
	}
	return min, max
}
