package assign

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
	"github.com/osmcore/osm/spectrum"
)

// routesShareFiber reports whether path1 and path2 have any fiber in common.
func routesShareFiber(path1, path2 []netmodel.Fiber) bool {
	seen := make(map[string]struct{}, len(path1))
	for _, f := range path1 {
		seen[f.IdentityKey()] = struct{}{}
	}
	for _, f := range path2 {
		if _, ok := seen[f.IdentityKey()]; ok {
			return true
		}
	}
	return false
}

// FirstFitTwoRoutes (algorithm B) finds slot assignments of length n for
// two lightpath candidates simultaneously. If the routes share no fiber,
// each is assigned independently via FirstFit. If they do share fibers,
// the two ranges must additionally be disjoint wherever they overlap in
// fiber footprint; since both run the same length n, this reduces to
// requiring |s1-s2| >= n, and the search returns the first feasible pair in
// ascending (s1, s2) order.
func FirstFitTwoRoutes(
	m *spectrum.OpticalSpectrumManager,
	path1 []netmodel.Fiber, add1, drop1 *netmodel.ModuleRef,
	path2 []netmodel.Fiber, add2, drop2 *netmodel.ModuleRef,
	n int,
) (*slotset.Set, *slotset.Set, error) {
	if n <= 0 {
		return nil, nil, nil
	}
	if hasDuplicateFibers(path1) || hasDuplicateFibers(path2) {
		return nil, nil, nil
	}

	if !routesShareFiber(path1, path2) {
		s1, err := FirstFit(m, path1, add1, drop1, n, nil)
		if err != nil {
			return nil, nil, err
		}
		if s1 == nil {
			return nil, nil, nil
		}
		s2, err := FirstFit(m, path2, add2, drop2, n, nil)
		if err != nil {
			return nil, nil, err
		}
		if s2 == nil {
			return nil, nil, nil
		}
		return s1, s2, nil
	}

	valid1, err := m.AvailableSlotIds(path1, add1, drop1)
	if err != nil {
		return nil, nil, err
	}
	valid2, err := m.AvailableSlotIds(path2, add2, drop2)
	if err != nil {
		return nil, nil, err
	}

	starts1 := spectrum.ContiguousRunStarts(valid1, n).Slice()
	starts2 := spectrum.ContiguousRunStarts(valid2, n).Slice()

	for _, s1 := range starts1 {
		for _, s2 := range starts2 {
			if abs(s1-s2) >= n {
				return slotset.FromRange(s1, s1+n-1), slotset.FromRange(s2, s2+n-1), nil
			}
		}
	}
	return nil, nil, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
