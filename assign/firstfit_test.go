package assign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmcore/osm/assign"
	"github.com/osmcore/osm/internal/memnet"
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
	"github.com/osmcore/osm/spectrum"
)

func setupSingleFiber(t *testing.T) (*spectrum.OpticalSpectrumManager, *memnet.Network, *memnet.Fiber) {
	t.Helper()
	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	f := net.AddFiber("F", a, b, 0, 10, 10)
	m := spectrum.New(net)
	return m, net, f
}

// First-fit with a minimum initial slot.
func TestFirstFitWithMinimum(t *testing.T) {
	require := require.New(t)
	m, net, f := setupSingleFiber(t)

	lp := net.AddLightpath("lp0", []*memnet.Fiber{f}, slotset.Of(0, 1, 4, 5, 8), nil, nil)
	m.AllocateLegitimate(lp, nil, nil, []netmodel.Fiber{f}, slotset.Of(0, 1, 4, 5, 8))

	path := []netmodel.Fiber{f}

	// idle = {2,3,6,7,9,10}; no contiguous run of length 3 exists.
	got, err := assign.FirstFit(m, path, nil, nil, 3, nil)
	require.NoError(err)
	require.Nil(got)

	// n=2: first run is {2,3}.
	got, err = assign.FirstFit(m, path, nil, nil, 2, nil)
	require.NoError(err)
	require.Equal([]int{2, 3}, got.Slice())

	// n=2, minSlot=5: first run >=5 is {6,7}.
	min := 5
	got, err = assign.FirstFit(m, path, nil, nil, 2, &min)
	require.NoError(err)
	require.Equal([]int{6, 7}, got.Slice())
}

func TestFirstFitRejectsDuplicateFiberAsNone(t *testing.T) {
	require := require.New(t)
	m, _, f := setupSingleFiber(t)

	got, err := assign.FirstFit(m, []netmodel.Fiber{f, f}, nil, nil, 1, nil)
	require.NoError(err)
	require.Nil(got)
}

func TestFirstFitEmptyFiberSetSurfacesError(t *testing.T) {
	require := require.New(t)
	m, _, _ := setupSingleFiber(t)

	_, err := assign.FirstFit(m, nil, nil, nil, 2, nil)
	require.ErrorIs(err, spectrum.ErrEmptyFiberSet)
}

func TestFirstFitTwoRoutesDisjointPaths(t *testing.T) {
	require := require.New(t)

	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	c := net.AddNode("C", memnet.SelectiveArch{})
	f1 := net.AddFiber("F1", a, b, 0, 10, 10)
	f2 := net.AddFiber("F2", b, c, 0, 10, 10)
	m := spectrum.New(net)

	s1, s2, err := assign.FirstFitTwoRoutes(m,
		[]netmodel.Fiber{f1}, nil, nil,
		[]netmodel.Fiber{f2}, nil, nil,
		2)
	require.NoError(err)
	require.Equal([]int{0, 1}, s1.Slice())
	require.Equal([]int{0, 1}, s2.Slice())
}

func TestFirstFitTwoRoutesSharedFiberDisjointRanges(t *testing.T) {
	require := require.New(t)
	m, _, f := setupSingleFiber(t)

	s1, s2, err := assign.FirstFitTwoRoutes(m,
		[]netmodel.Fiber{f}, nil, nil,
		[]netmodel.Fiber{f}, nil, nil,
		3)
	require.NoError(err)
	require.NotNil(s1)
	require.NotNil(s2)

	// Ranges must not overlap, and (s1min, s2min) must be the ascending
	// lexicographically-smallest feasible pair: (0,3).
	min1, _ := s1.Min()
	min2, _ := s2.Min()
	require.Equal(0, min1)
	require.Equal(3, min2)
	require.True(s1.Intersect(s2).IsEmpty())
}

// Bidirectional adjacency first-fit across a two-hop chain.
func TestFirstFitForAdjacenciesBidi(t *testing.T) {
	require := require.New(t)

	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	c := net.AddNode("C", memnet.SelectiveArch{})

	// hop1: A<->B with idle initial-slot sets (n=4) = {0,5,10}.
	// hop2: B<->C with idle initial-slot sets (n=4) = {5,10,20}.
	abFwd, abRev := net.AddBidiFiberPair("AB", "BA", a, b, 0, 30, 10)
	bcFwd, bcRev := net.AddBidiFiberPair("BC", "CB", b, c, 0, 30, 10)
	m := spectrum.New(net)

	occupyAllExcept(t, m, net, abFwd, []int{0, 1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13}, 0, 30)
	occupyAllExcept(t, m, net, abRev, []int{0, 1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13}, 0, 30)
	occupyAllExcept(t, m, net, bcFwd, []int{5, 6, 7, 8, 10, 11, 12, 13, 20, 21, 22, 23}, 0, 30)
	occupyAllExcept(t, m, net, bcRev, []int{5, 6, 7, 8, 10, 11, 12, 13, 20, 21, 22, 23}, 0, 30)

	pairs, slots, err := assign.FirstFitForAdjacenciesBidi(
		m, net, []netmodel.Node{a, b, c}, nil, nil, nil, nil, 4, nil)
	require.NoError(err)
	require.NotNil(pairs)
	require.Len(pairs, 2)
	require.Equal([]int{5, 6, 7, 8}, slots.Slice())
}

// A module occupied only in its drop role must not block a candidate range
// from being chosen for a different lightpath's add role at the same
// (Node, Index) identity.
func TestFirstFitForAdjacenciesBidiDoesNotCrossAddAndDropRoles(t *testing.T) {
	require := require.New(t)

	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	c := net.AddNode("C", memnet.SelectiveArch{})
	_, _ = net.AddBidiFiberPair("AB", "BA", a, b, 0, 10, 10)
	// Unrelated fiber, used only to host the blocking lightpath's
	// fiber-side occupation so the AB hop's own idle range stays clean.
	elsewhere := net.AddFiber("AC", a, c, 0, 10, 10)
	m := spectrum.New(net)

	shared := netmodel.ModuleRef{Node: a, Index: 0}

	// Occupy `shared` in its drop role at [0,3], on an unrelated fiber.
	blocker := net.AddLightpath("blocker", []*memnet.Fiber{elsewhere}, slotset.Of(0, 1, 2, 3), nil, nil)
	m.AllocateLegitimate(blocker, nil, &shared, []netmodel.Fiber{elsewhere}, slotset.Of(0, 1, 2, 3))

	// Requesting `shared` in the add role over the same range must still
	// succeed: its add-role occupation is empty.
	pairs, slots, err := assign.FirstFitForAdjacenciesBidi(
		m, net, []netmodel.Node{a, b}, &shared, nil, nil, nil, 4, nil)
	require.NoError(err)
	require.NotNil(pairs)
	require.Equal([]int{0, 1, 2, 3}, slots.Slice())
}

// occupyAllExcept allocates a blocking lightpath on fiber f covering every
// valid slot except those listed in keepIdle, used to sculpt a fiber's idle
// set down to a known shape for test fixtures.
func occupyAllExcept(t *testing.T, m *spectrum.OpticalSpectrumManager, net *memnet.Network, f *memnet.Fiber, keepIdle []int, lo, hi int) {
	t.Helper()
	keep := slotset.Of(keepIdle...)
	blockSlots := slotset.FromRange(lo, hi).Difference(keep)
	if blockSlots.IsEmpty() {
		return
	}
	lp := net.AddLightpath("block-"+f.IdentityKey(), []*memnet.Fiber{f}, blockSlots, nil, nil)
	m.AllocateLegitimate(lp, nil, nil, []netmodel.Fiber{f}, blockSlots)
}
