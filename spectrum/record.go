package spectrum

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

// LightpathOccupationRecord is the per-lightpath memo of its legitimate
// placement, created on allocate and destroyed on release. Its waste-side
// accessors are a lazily-computed caching view over the manager's three
// waste SlotIndex instances — the core itself always allocates waste
// eagerly via AllocateWaste (driven by ResetFromLightpaths), so this cache
// is read-only sugar for callers who want "what does lp occupy" without
// threading signal kind through three separate SlotIndex calls.
type LightpathOccupationRecord struct {
	lp netmodel.Lightpath

	legitFibers []netmodel.Fiber
	addModule   *netmodel.ModuleRef
	dropModule  *netmodel.ModuleRef
	slots       *slotset.Set

	owner *OpticalSpectrumManager

	wasteFibersCache []netmodel.Fiber
	wasteAddCache    []netmodel.ModuleRef
	wasteDropCache   []netmodel.ModuleRef
	wasteComputed    bool
}

func newRecord(owner *OpticalSpectrumManager, lp netmodel.Lightpath, fibers []netmodel.Fiber, add, drop *netmodel.ModuleRef, slots *slotset.Set) *LightpathOccupationRecord {
	return &LightpathOccupationRecord{
		owner:       owner,
		lp:          lp,
		legitFibers: fibers,
		addModule:   add,
		dropModule:  drop,
		slots:       slots,
	}
}

// Lightpath returns the lightpath this record describes.
func (r *LightpathOccupationRecord) Lightpath() netmodel.Lightpath { return r.lp }

// LegitimateFibers is the fiber sequence this lightpath's legitimate signal
// occupies.
func (r *LightpathOccupationRecord) LegitimateFibers() []netmodel.Fiber { return r.legitFibers }

// LegitimateAddModule is the directionless add module this lightpath
// occupies at its origin, if any.
func (r *LightpathOccupationRecord) LegitimateAddModule() (netmodel.ModuleRef, bool) {
	if r.addModule == nil {
		return netmodel.ModuleRef{}, false
	}
	return *r.addModule, true
}

// LegitimateDropModule is the directionless drop module this lightpath
// occupies at its destination, if any.
func (r *LightpathOccupationRecord) LegitimateDropModule() (netmodel.ModuleRef, bool) {
	if r.dropModule == nil {
		return netmodel.ModuleRef{}, false
	}
	return *r.dropModule, true
}

// OccupiedSlotIds is the set of slot ids this lightpath holds (same on every
// legitimate fiber and module it occupies).
func (r *LightpathOccupationRecord) OccupiedSlotIds() *slotset.Set { return r.slots.Clone() }

// updateWasteOccupationInfo recomputes the waste caches by scanning this
// lightpath's entry in the owner's three waste SlotIndex instances. It is
// idempotent and cheap to call repeatedly; results are cached after the
// first call until the manager allocates more waste for this lightpath,
// which resets the cache. Release discards the record itself.
func (r *LightpathOccupationRecord) updateWasteOccupationInfo() {
	if r.wasteComputed {
		return
	}
	r.wasteComputed = true

	if perFiber, ok := r.owner.wasteFiber.inverse[r.lp]; ok {
		for f := range perFiber {
			r.wasteFibersCache = append(r.wasteFibersCache, f)
		}
		sortFibers(r.wasteFibersCache)
	}
	if perAdd, ok := r.owner.wasteAdd.inverse[r.lp]; ok {
		for m := range perAdd {
			r.wasteAddCache = append(r.wasteAddCache, m)
		}
		sortModules(r.wasteAddCache)
	}
	if perDrop, ok := r.owner.wasteDrop.inverse[r.lp]; ok {
		for m := range perDrop {
			r.wasteDropCache = append(r.wasteDropCache, m)
		}
		sortModules(r.wasteDropCache)
	}
}

// FibersWithWasteSignal is the set of fibers this lightpath's signal
// unintentionally reaches, per the owning manager's waste index.
func (r *LightpathOccupationRecord) FibersWithWasteSignal() []netmodel.Fiber {
	r.updateWasteOccupationInfo()
	return r.wasteFibersCache
}

// AddModulesWithWasteSignal is the set of add modules this lightpath's
// signal unintentionally reaches.
func (r *LightpathOccupationRecord) AddModulesWithWasteSignal() []netmodel.ModuleRef {
	r.updateWasteOccupationInfo()
	return r.wasteAddCache
}

// DropModulesWithWasteSignal is the set of drop modules this lightpath's
// signal unintentionally reaches.
func (r *LightpathOccupationRecord) DropModulesWithWasteSignal() []netmodel.ModuleRef {
	r.updateWasteOccupationInfo()
	return r.wasteDropCache
}
