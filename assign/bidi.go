package assign

import (
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
	"github.com/osmcore/osm/spectrum"
)

// FiberPair is the chosen forward/backward fiber for one hop of an
// adjacency chain.
type FiberPair struct {
	Forward netmodel.Fiber
	Reverse netmodel.Fiber
}

type hopOption struct {
	forward, reverse netmodel.Fiber
	starts           *slotset.Set
}

// FirstFitForAdjacenciesBidi (algorithm C) finds a single contiguous slot
// range of length n usable across an entire chain of node adjacencies,
// choosing one bidirectional fiber pair per hop. sequence is the ordered
// list of nodes A, B, C, ...; for every consecutive pair the function
// enumerates net.NodePairFibers(A, B), rejecting any non-bidirectional
// candidate (ErrRequiresBidirectional) or any fiber (or its bidirectional
// partner) already offered at an earlier hop (ErrDuplicateFiberOption).
//
// addModAB/dropModAB apply at the chain's origin and destination in the
// A->B direction; addModBA/dropModBA apply in the reverse direction. Any of
// the four may be nil. unusable lists slot ids that are never chosen as the
// initial slot of the range; a range starting elsewhere may still cover them.
//
// Returns (nil, nil, nil) if no slot range satisfies every hop and module
// constraint.
func FirstFitForAdjacenciesBidi(
	m *spectrum.OpticalSpectrumManager,
	net netmodel.Network,
	sequence []netmodel.Node,
	addModAB, dropModAB, addModBA, dropModBA *netmodel.ModuleRef,
	n int,
	unusable *slotset.Set,
) ([]FiberPair, *slotset.Set, error) {
	if n <= 0 || len(sequence) < 2 {
		return nil, nil, nil
	}
	if unusable == nil {
		unusable = slotset.New()
	}

	hops := make([][]hopOption, 0, len(sequence)-1)
	hopSets := make([]*slotset.Set, 0, len(sequence)-1)
	seen := make(map[string]struct{})

	for i := 0; i < len(sequence)-1; i++ {
		a, b := sequence[i], sequence[i+1]
		candidates := net.NodePairFibers(a, b)

		var options []hopOption
		unionStarts := slotset.New()

		for _, ab := range candidates {
			if !ab.IsBidirectional() {
				return nil, nil, ErrRequiresBidirectional
			}
			ba := ab.BidirectionalPair()
			if _, dup := seen[ab.IdentityKey()]; dup {
				return nil, nil, ErrDuplicateFiberOption
			}
			if _, dup := seen[ba.IdentityKey()]; dup {
				return nil, nil, ErrDuplicateFiberOption
			}
			seen[ab.IdentityKey()] = struct{}{}
			seen[ba.IdentityKey()] = struct{}{}

			startsAB := m.IdleRangeInitialSlots(ab, n)
			startsBA := m.IdleRangeInitialSlots(ba, n)
			starts := startsAB.Intersect(startsBA).Difference(unusable)

			options = append(options, hopOption{forward: ab, reverse: ba, starts: starts})
			unionStarts = unionStarts.Union(starts)
		}

		hops = append(hops, options)
		hopSets = append(hopSets, unionStarts)
	}

	candidateStarts := slotset.IntersectAll(hopSets).Slice()

	for _, s := range candidateStarts {
		if rangeOccupiedOnAddModule(m, addModAB, s, n) ||
			rangeOccupiedOnDropModule(m, dropModAB, s, n) ||
			rangeOccupiedOnAddModule(m, addModBA, s, n) ||
			rangeOccupiedOnDropModule(m, dropModBA, s, n) {
			continue
		}

		pairs, ok := choosePairs(hops, s, n)
		if !ok {
			continue
		}
		return pairs, slotset.FromRange(s, s+n-1), nil
	}

	return nil, nil, nil
}

// rangeOccupiedOnAddModule checks mod's add-role occupation only (legitimate
// and waste signals both, but never the drop-role index for some unrelated
// module that happens to share the same (node, index) identity).
func rangeOccupiedOnAddModule(m *spectrum.OpticalSpectrumManager, mod *netmodel.ModuleRef, s, n int) bool {
	if mod == nil {
		return false
	}
	return !m.OccupiedSlotIdsInAddModule(*mod).Intersect(slotset.FromRange(s, s+n-1)).IsEmpty()
}

// rangeOccupiedOnDropModule is rangeOccupiedOnAddModule for the drop role.
func rangeOccupiedOnDropModule(m *spectrum.OpticalSpectrumManager, mod *netmodel.ModuleRef, s, n int) bool {
	if mod == nil {
		return false
	}
	return !m.OccupiedSlotIdsInDropModule(*mod).Intersect(slotset.FromRange(s, s+n-1)).IsEmpty()
}

// choosePairs picks, for each hop, the first enumerated option whose
// forward and backward fibers are both idle across [s, s+n-1].
func choosePairs(hops [][]hopOption, s, n int) ([]FiberPair, bool) {
	pairs := make([]FiberPair, 0, len(hops))
	for _, options := range hops {
		found := false
		for _, opt := range options {
			if coversRange(opt.starts, s, n) {
				pairs = append(pairs, FiberPair{Forward: opt.forward, Reverse: opt.reverse})
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return pairs, true
}

// coversRange reports whether s is itself a recorded run-start in starts;
// since starts already only contains ids beginning a full idle run of
// length n, membership is sufficient.
func coversRange(starts *slotset.Set, s, n int) bool {
	return starts.Contains(s)
}
