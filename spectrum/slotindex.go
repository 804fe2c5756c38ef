// Package spectrum implements the occupation bookkeeping core of the
// optical spectrum manager: the bidirectional SlotIndex (C1), the
// per-lightpath occupation record (C2), and the OpticalSpectrumManager
// itself (C3).
package spectrum

import (
	"sort"

	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

// SlotIndex is a bidirectional occupation index between resources of type E
// (a fiber or a directionless module) and lightpaths, per slot id.
//
// forward maps a resource to, for each occupied slot id, the set of
// lightpaths occupying it there. inverse maps a lightpath back to, for each
// resource it occupies, the set of slot ids it holds there — this lets
// Release locate a lightpath's resources without scanning the whole index.
// Both directions are kept in sync by every mutating method; empty leaves
// are pruned immediately, never left dangling.
type SlotIndex[E comparable] struct {
	keyOf func(E) string

	forward map[E]map[int]map[netmodel.Lightpath]struct{}
	inverse map[netmodel.Lightpath]map[E]*slotset.Set
}

// NewSlotIndex creates an empty SlotIndex. keyOf must return a stable,
// unique string for each distinct E value; it is used only to produce
// deterministic iteration order for ElementsWithAnyOccupation, never for
// equality (map key equality on E itself governs that).
func NewSlotIndex[E comparable](keyOf func(E) string) *SlotIndex[E] {
	return &SlotIndex[E]{
		keyOf:   keyOf,
		forward: make(map[E]map[int]map[netmodel.Lightpath]struct{}),
		inverse: make(map[netmodel.Lightpath]map[E]*slotset.Set),
	}
}

// Allocate unions slots into e's occupation for lp. It never fails on
// clash: overlapping occupation is recorded faithfully and detected later
// by the manager's validity queries. A nil or empty slots is a no-op.
func (idx *SlotIndex[E]) Allocate(e E, lp netmodel.Lightpath, slots *slotset.Set) {
	if slots == nil || slots.IsEmpty() {
		return
	}

	if idx.inverse[lp] == nil {
		idx.inverse[lp] = make(map[E]*slotset.Set)
	}
	if existing, ok := idx.inverse[lp][e]; ok {
		idx.inverse[lp][e] = existing.Union(slots)
	} else {
		idx.inverse[lp][e] = slots.Clone()
	}

	if idx.forward[e] == nil {
		idx.forward[e] = make(map[int]map[netmodel.Lightpath]struct{})
	}
	slots.ForEachAscending(func(s int) bool {
		if idx.forward[e][s] == nil {
			idx.forward[e][s] = make(map[netmodel.Lightpath]struct{})
		}
		idx.forward[e][s][lp] = struct{}{}
		return true
	})
}

// Release removes every occupation lp holds across all resources. A no-op
// if lp is not present, and idempotent: a second call changes nothing.
func (idx *SlotIndex[E]) Release(lp netmodel.Lightpath) {
	perElement, ok := idx.inverse[lp]
	if !ok {
		return
	}

	for e, slots := range perElement {
		slots.ForEachAscending(func(s int) bool {
			bucket := idx.forward[e][s]
			delete(bucket, lp)
			if len(bucket) == 0 {
				delete(idx.forward[e], s)
			}
			return true
		})
		if len(idx.forward[e]) == 0 {
			delete(idx.forward, e)
		}
	}

	delete(idx.inverse, lp)
}

// Clear empties both maps.
func (idx *SlotIndex[E]) Clear() {
	idx.forward = make(map[E]map[int]map[netmodel.Lightpath]struct{})
	idx.inverse = make(map[netmodel.Lightpath]map[E]*slotset.Set)
}

// SlotOccupants pairs a slot id with the lightpaths occupying it, sorted by
// lightpath identity for deterministic output.
type SlotOccupants struct {
	Slot       int
	Lightpaths []netmodel.Lightpath
}

// OccupiedSlots returns, for e, every occupied slot id in ascending order
// together with its occupying lightpaths. Returns nil if e has no
// occupation at all.
func (idx *SlotIndex[E]) OccupiedSlots(e E) []SlotOccupants {
	perSlot, ok := idx.forward[e]
	if !ok {
		return nil
	}

	ids := make([]int, 0, len(perSlot))
	for s := range perSlot {
		ids = append(ids, s)
	}
	sort.Ints(ids)

	out := make([]SlotOccupants, 0, len(ids))
	for _, s := range ids {
		out = append(out, SlotOccupants{Slot: s, Lightpaths: sortedLightpaths(perSlot[s])})
	}
	return out
}

// OccupiedSlotIds returns the set of slot ids occupied on e. The result is a
// fresh Set, safe for the caller to mutate.
func (idx *SlotIndex[E]) OccupiedSlotIds(e E) *slotset.Set {
	out := slotset.New()
	for s := range idx.forward[e] {
		out.Add(s)
	}
	return out
}

// ElementsWithAnyOccupation returns every resource with at least one
// occupied slot, ordered deterministically by keyOf.
func (idx *SlotIndex[E]) ElementsWithAnyOccupation() []E {
	out := make([]E, 0, len(idx.forward))
	for e := range idx.forward {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return idx.keyOf(out[i]) < idx.keyOf(out[j]) })
	return out
}

// FullMap returns a read-only snapshot of the forward index: for every
// resource with occupation, its ascending SlotOccupants list.
func (idx *SlotIndex[E]) FullMap() map[E][]SlotOccupants {
	out := make(map[E][]SlotOccupants, len(idx.forward))
	for e := range idx.forward {
		out[e] = idx.OccupiedSlots(e)
	}
	return out
}

// occupantsAt returns the lightpaths occupying e at slot s (nil if none),
// used internally by clash and validity checks that need a single-slot
// lookup without building a full OccupiedSlots snapshot.
func (idx *SlotIndex[E]) occupantsAt(e E, s int) map[netmodel.Lightpath]struct{} {
	perSlot, ok := idx.forward[e]
	if !ok {
		return nil
	}
	return perSlot[s]
}

func sortedLightpaths(set map[netmodel.Lightpath]struct{}) []netmodel.Lightpath {
	out := make([]netmodel.Lightpath, 0, len(set))
	for lp := range set {
		out = append(out, lp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IdentityKey() < out[j].IdentityKey() })
	return out
}
