package assign

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
	"github.com/osmcore/osm/spectrum"
)

// hasDuplicateFibers mirrors the manager's own duplicate-fiber guard: a
// valid lightpath path never repeats a fiber. Kept local rather than
// exported from spectrum, since it is a pure helper over a fiber slice, not
// occupation state.
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

// restrictFrom returns the subset of set with id >= min.
func restrictFrom(set *slotset.Set, min int) *slotset.Set {
	out := slotset.New()
	set.ForEachAscending(func(id int) bool {
		if id >= min {
			out.Add(id)
		}
		return true
	})
	return out
}

// firstRunOfLength scans ids (already ascending) for the first contiguous
// run of length n and returns its starting id.
func firstRunOfLength(ids []int, n int) (int, bool) {
	run := 0
	start := 0
	prev := 0
	for i, id := range ids {
		if i == 0 || id != prev+1 {
			run = 1
			start = id
		} else {
			run++
		}
		prev = id
		if run == n {
			return start, true
		}
	}
	return 0, false
}

// FirstFit (algorithm A) finds the lowest-id contiguous run of n slots that
// is available on every fiber in path and on the optional add/drop
// modules, optionally restricted to ids >= minSlot. It returns (nil, nil)
// if path repeats a fiber or no such run exists; a non-nil error only
// surfaces a malformed query (an empty path).
func FirstFit(m *spectrum.OpticalSpectrumManager, path []netmodel.Fiber, addMod, dropMod *netmodel.ModuleRef, n int, minSlot *int) (*slotset.Set, error) {
	if n <= 0 {
		return nil, nil
	}
	if hasDuplicateFibers(path) {
		return nil, nil
	}

	valid, err := m.AvailableSlotIds(path, addMod, dropMod)
	if err != nil {
		return nil, err
	}
	if minSlot != nil {
		valid = restrictFrom(valid, *minSlot)
	}

	start, ok := firstRunOfLength(valid.Slice(), n)
	if !ok {
		return nil, nil
	}
	return slotset.FromRange(start, start+n-1), nil
}
