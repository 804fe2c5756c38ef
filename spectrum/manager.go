package spectrum

import (
	"github.com/sirupsen/logrus"

	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

func fiberKey(f netmodel.Fiber) string       { return f.IdentityKey() }
func moduleKey(m netmodel.ModuleRef) string { return m.IdentityKey() }

// OpticalSpectrumManager (C3) holds six SlotIndex instances — keyed by
// signal kind (legitimate/waste) × resource kind (fiber/add-module/
// drop-module) — plus a per-lightpath occupation record. It is a pure,
// single-threaded in-memory analysis object: it borrows its Network
// reference and every Fiber/Node/Lightpath it indexes from the caller, and
// assumes external serialization of access (spec: no concurrent mutation).
type OpticalSpectrumManager struct {
	net netmodel.Network
	log *logrus.Logger

	legitFiber *SlotIndex[netmodel.Fiber]
	legitAdd   *SlotIndex[netmodel.ModuleRef]
	legitDrop  *SlotIndex[netmodel.ModuleRef]

	wasteFiber *SlotIndex[netmodel.Fiber]
	wasteAdd   *SlotIndex[netmodel.ModuleRef]
	wasteDrop  *SlotIndex[netmodel.ModuleRef]

	records map[netmodel.Lightpath]*LightpathOccupationRecord
}

// New creates an OpticalSpectrumManager bound to net. It starts empty;
// call ResetFromLightpaths to seed it from net's current lightpaths.
func New(net netmodel.Network, opts ...Option) *OpticalSpectrumManager {
	m := &OpticalSpectrumManager{
		net:        net,
		log:        discardLogger(),
		legitFiber: NewSlotIndex(fiberKey),
		legitAdd:   NewSlotIndex(moduleKey),
		legitDrop:  NewSlotIndex(moduleKey),
		wasteFiber: NewSlotIndex(fiberKey),
		wasteAdd:   NewSlotIndex(moduleKey),
		wasteDrop:  NewSlotIndex(moduleKey),
		records:    make(map[netmodel.Lightpath]*LightpathOccupationRecord),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ResetFromLightpaths clears all six indices and rebuilds them from every
// lightpath currently in net, allocating its legitimate placement and its
// waste triple. Deterministic: independent of net.Lightpaths() order,
// since every lightpath's own allocation only ever touches its own
// resources.
func (m *OpticalSpectrumManager) ResetFromLightpaths(net netmodel.Network) error {
	if net.NetworkKey() != m.net.NetworkKey() {
		return ErrCrossNetwork
	}

	m.legitFiber.Clear()
	m.legitAdd.Clear()
	m.legitDrop.Clear()
	m.wasteFiber.Clear()
	m.wasteAdd.Clear()
	m.wasteDrop.Clear()
	m.records = make(map[netmodel.Lightpath]*LightpathOccupationRecord)

	for _, lp := range net.Lightpaths() {
		var add, drop *netmodel.ModuleRef
		if idx, ok := lp.AddModuleIndex(); ok {
			ref := netmodel.ModuleRef{Node: lp.A(), Index: idx}
			add = &ref
		}
		if idx, ok := lp.DropModuleIndex(); ok {
			ref := netmodel.ModuleRef{Node: lp.B(), Index: idx}
			drop = &ref
		}
		m.allocateLegitimate(lp, add, drop, lp.SeqFibers(), lp.OpticalSlotIds())

		wasteFibers, wasteAdd, wasteDrop := lp.WasteResources()
		m.allocateWaste(lp, wasteAdd, wasteDrop, wasteFibers, lp.OpticalSlotIds())
	}

	m.log.WithField("lightpaths", len(m.records)).Debug("spectrum: reset from network")
	return nil
}

// AllocateLegitimate records lp's legitimate placement: fibers, and
// optional add/drop modules, all at slots. A nil/empty slots is a no-op.
// Returns ErrCrossNetwork without recording anything if lp, any fiber, or
// either module belongs to a different network than the one this manager
// was built from.
func (m *OpticalSpectrumManager) AllocateLegitimate(lp netmodel.Lightpath, addMod, dropMod *netmodel.ModuleRef, fibers []netmodel.Fiber, slots *slotset.Set) error {
	if err := m.checkForeign(lp, addMod, dropMod, fibers); err != nil {
		return err
	}
	m.allocateLegitimate(lp, addMod, dropMod, fibers, slots)
	return nil
}

func (m *OpticalSpectrumManager) allocateLegitimate(lp netmodel.Lightpath, addMod, dropMod *netmodel.ModuleRef, fibers []netmodel.Fiber, slots *slotset.Set) {
	if slots == nil || slots.IsEmpty() {
		return
	}
	for _, f := range fibers {
		m.legitFiber.Allocate(f, lp, slots)
	}
	if addMod != nil {
		m.legitAdd.Allocate(*addMod, lp, slots)
	}
	if dropMod != nil {
		m.legitDrop.Allocate(*dropMod, lp, slots)
	}

	m.records[lp] = newRecord(m, lp, fibers, addMod, dropMod, slots)
	m.log.WithFields(logrus.Fields{"lightpath": lp.IdentityKey(), "fibers": len(fibers), "slots": slots.Len()}).
		Trace("spectrum: allocated legitimate")
}

// AllocateWaste records lp's waste-signal placement across the given
// fibers and add/drop module collections, all at slots. Returns
// ErrCrossNetwork without recording anything if lp, any fiber, or any
// module belongs to a different network than the one this manager was
// built from.
func (m *OpticalSpectrumManager) AllocateWaste(lp netmodel.Lightpath, addMods, dropMods []netmodel.ModuleRef, fibers []netmodel.Fiber, slots *slotset.Set) error {
	if err := m.checkNetwork(lp); err != nil {
		return err
	}
	for _, f := range fibers {
		if err := m.checkNetwork(f); err != nil {
			return err
		}
	}
	for _, a := range addMods {
		if err := m.checkNetwork(a.Node); err != nil {
			return err
		}
	}
	for _, d := range dropMods {
		if err := m.checkNetwork(d.Node); err != nil {
			return err
		}
	}
	m.allocateWaste(lp, addMods, dropMods, fibers, slots)
	return nil
}

func (m *OpticalSpectrumManager) allocateWaste(lp netmodel.Lightpath, addMods, dropMods []netmodel.ModuleRef, fibers []netmodel.Fiber, slots *slotset.Set) {
	if slots == nil || slots.IsEmpty() {
		return
	}
	for _, f := range fibers {
		m.wasteFiber.Allocate(f, lp, slots)
	}
	for _, a := range addMods {
		m.wasteAdd.Allocate(a, lp, slots)
	}
	for _, d := range dropMods {
		m.wasteDrop.Allocate(d, lp, slots)
	}
	if rec, ok := m.records[lp]; ok {
		rec.wasteComputed = false
		rec.wasteFibersCache, rec.wasteAddCache, rec.wasteDropCache = nil, nil, nil
	}
	m.log.WithFields(logrus.Fields{"lightpath": lp.IdentityKey(), "waste_fibers": len(fibers)}).
		Trace("spectrum: allocated waste")
}

// Release removes lp's occupation from all six indices and drops its
// record. Idempotent: a second call is a no-op. Returns ErrCrossNetwork
// without changing anything if lp belongs to a different network than the
// one this manager was built from.
func (m *OpticalSpectrumManager) Release(lp netmodel.Lightpath) error {
	if err := m.checkNetwork(lp); err != nil {
		return err
	}
	m.legitFiber.Release(lp)
	m.legitAdd.Release(lp)
	m.legitDrop.Release(lp)
	m.wasteFiber.Release(lp)
	m.wasteAdd.Release(lp)
	m.wasteDrop.Release(lp)
	delete(m.records, lp)
	m.log.WithField("lightpath", lp.IdentityKey()).Trace("spectrum: released")
	return nil
}

// Record returns lp's occupation record, if it has one.
func (m *OpticalSpectrumManager) Record(lp netmodel.Lightpath) (*LightpathOccupationRecord, bool) {
	r, ok := m.records[lp]
	return r, ok
}

func (m *OpticalSpectrumManager) checkNetwork(n interface{ NetworkKey() string }) error {
	if n.NetworkKey() != m.net.NetworkKey() {
		return ErrCrossNetwork
	}
	return nil
}

// checkForeign is checkNetwork applied to every borrowed entity an
// allocate call takes: the lightpath itself, its fibers, and its optional
// add/drop modules.
func (m *OpticalSpectrumManager) checkForeign(lp netmodel.Lightpath, addMod, dropMod *netmodel.ModuleRef, fibers []netmodel.Fiber) error {
	if lp != nil {
		if err := m.checkNetwork(lp); err != nil {
			return err
		}
	}
	return m.checkForeignResources(addMod, dropMod, fibers)
}

// checkForeignResources is checkForeign without the lightpath check, for
// call sites (like IsAllocatable) that take fibers and modules but no
// lightpath.
func (m *OpticalSpectrumManager) checkForeignResources(addMod, dropMod *netmodel.ModuleRef, fibers []netmodel.Fiber) error {
	for _, f := range fibers {
		if err := m.checkNetwork(f); err != nil {
			return err
		}
	}
	if addMod != nil {
		if err := m.checkNetwork(addMod.Node); err != nil {
			return err
		}
	}
	if dropMod != nil {
		if err := m.checkNetwork(dropMod.Node); err != nil {
			return err
		}
	}
	return nil
}
