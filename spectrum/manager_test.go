package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/osmcore/osm/internal/memnet"
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
	"github.com/osmcore/osm/spectrum"
)

type ManagerSuite struct {
	suite.Suite
	net *memnet.Network
	a   *memnet.Node
	b   *memnet.Node
	f   *memnet.Fiber
	m   *spectrum.OpticalSpectrumManager
}

func (s *ManagerSuite) SetupTest() {
	s.net = memnet.New("net1")
	s.a = s.net.AddNode("A", memnet.SelectiveArch{})
	s.b = s.net.AddNode("B", memnet.SelectiveArch{})
	s.f = s.net.AddFiber("F", s.a, s.b, 0, 100, 80)
	s.m = spectrum.New(s.net)
}

// Single-hop allocate/release.
func (s *ManagerSuite) TestSingleHopAllocateRelease() {
	require := s.Require()

	require.Equal(101, s.m.IdleSlotIds(s.f).Len())

	lp1 := s.net.AddLightpath("lp1", []*memnet.Fiber{s.f}, slotset.Of(3, 4, 5), nil, nil)
	s.m.AllocateLegitimate(lp1, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(3, 4, 5))

	require.Equal([]int{3, 4, 5}, s.m.OccupiedSlotIds(s.f).Slice())

	idle := s.m.IdleSlotIds(s.f).Slice()
	require.NotContains(idle, 3)
	require.NotContains(idle, 4)
	require.NotContains(idle, 5)
	require.Equal(98, len(idle))

	s.m.Release(lp1)
	require.True(s.m.OccupiedSlotIds(s.f).IsEmpty())
}

// Clash detection.
func (s *ManagerSuite) TestClashDetection() {
	require := s.Require()

	lp1 := s.net.AddLightpath("lp1", []*memnet.Fiber{s.f}, slotset.Of(5, 6), nil, nil)
	lp2 := s.net.AddLightpath("lp2", []*memnet.Fiber{s.f}, slotset.Of(6, 7), nil, nil)

	s.m.AllocateLegitimate(lp1, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(5, 6))
	s.m.AllocateLegitimate(lp2, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(6, 7))

	require.False(s.m.IsSpectrumOccupationOk())
	require.Equal([]int{6}, s.m.ClashingSlots(s.f).Slice())

	s.m.Release(lp2)
	require.True(s.m.IsSpectrumOccupationOk())
}

func (s *ManagerSuite) TestReleaseIdempotent() {
	require := s.Require()

	lp1 := s.net.AddLightpath("lp1", []*memnet.Fiber{s.f}, slotset.Of(1, 2), nil, nil)
	s.m.AllocateLegitimate(lp1, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(1, 2))
	s.m.Release(lp1)
	before := s.m.OccupiedSlotIds(s.f).Slice()
	s.m.Release(lp1)
	require.Equal(before, s.m.OccupiedSlotIds(s.f).Slice())
	require.Empty(before)
}

func (s *ManagerSuite) TestAllocateReleaseRestoresState() {
	require := s.Require()

	pre := s.m.IdleSlotIds(s.f).Slice()

	lp1 := s.net.AddLightpath("lp1", []*memnet.Fiber{s.f}, slotset.Of(10, 11, 12), nil, nil)
	s.m.AllocateLegitimate(lp1, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(10, 11, 12))
	s.m.Release(lp1)

	require.Equal(pre, s.m.IdleSlotIds(s.f).Slice())
}

func (s *ManagerSuite) TestIsAllocatableRejectsDuplicateFiber() {
	require := s.Require()
	require.False(s.m.IsAllocatable([]netmodel.Fiber{s.f, s.f}, nil, nil, slotset.Of(1)))
}

func (s *ManagerSuite) TestIsAllocatableChecksValidityAndIdleness() {
	require := s.Require()

	require.True(s.m.IsAllocatable([]netmodel.Fiber{s.f}, nil, nil, slotset.Of(1, 2, 3)))
	require.False(s.m.IsAllocatable([]netmodel.Fiber{s.f}, nil, nil, slotset.Of(999)))

	lp1 := s.net.AddLightpath("lp1", []*memnet.Fiber{s.f}, slotset.Of(1), nil, nil)
	s.m.AllocateLegitimate(lp1, nil, nil, []netmodel.Fiber{s.f}, slotset.Of(1))
	require.False(s.m.IsAllocatable([]netmodel.Fiber{s.f}, nil, nil, slotset.Of(1, 2)))
}

func (s *ManagerSuite) TestAvailableSlotIdsRequiresNonEmptyFibers() {
	require := s.Require()
	_, err := s.m.AvailableSlotIds(nil, nil, nil)
	require.ErrorIs(err, spectrum.ErrEmptyFiberSet)
}

func (s *ManagerSuite) TestResetFromLightpathsRejectsCrossNetwork() {
	require := s.Require()
	other := memnet.New("net2")
	require.ErrorIs(s.m.ResetFromLightpaths(other), spectrum.ErrCrossNetwork)
}

// AllocateLegitimate, AllocateWaste, and Release all reject a lightpath
// belonging to a different network than the manager's own, without
// touching any index.
func (s *ManagerSuite) TestAllocateAndReleaseRejectCrossNetworkLightpath() {
	require := s.Require()

	other := memnet.New("net2")
	oa := other.AddNode("A", memnet.SelectiveArch{})
	ob := other.AddNode("B", memnet.SelectiveArch{})
	of := other.AddFiber("F", oa, ob, 0, 100, 80)
	foreignLP := other.AddLightpath("foreign", []*memnet.Fiber{of}, slotset.Of(1, 2), nil, nil)

	require.ErrorIs(s.m.AllocateLegitimate(foreignLP, nil, nil, []netmodel.Fiber{of}, slotset.Of(1, 2)), spectrum.ErrCrossNetwork)
	require.ErrorIs(s.m.AllocateWaste(foreignLP, nil, nil, []netmodel.Fiber{of}, slotset.Of(1, 2)), spectrum.ErrCrossNetwork)
	require.ErrorIs(s.m.Release(foreignLP), spectrum.ErrCrossNetwork)

	require.True(s.m.OccupiedSlotIds(s.f).IsEmpty())
	_, ok := s.m.Record(foreignLP)
	require.False(ok)
}

// A fiber from a different network is rejected even when paired with this
// manager's own network's lightpath-free inputs.
func (s *ManagerSuite) TestIsAllocatableRejectsCrossNetworkFiber() {
	require := s.Require()

	other := memnet.New("net2")
	oa := other.AddNode("A", memnet.SelectiveArch{})
	ob := other.AddNode("B", memnet.SelectiveArch{})
	of := other.AddFiber("F", oa, ob, 0, 100, 80)

	require.False(s.m.IsAllocatable([]netmodel.Fiber{of}, nil, nil, slotset.Of(1)))
}

func (s *ManagerSuite) TestIdleRangeInitialSlots() {
	require := s.Require()

	// Fiber valid {0..10}, occupied {0,1,4,5,8}.
	f2 := s.net.AddFiber("F2", s.a, s.b, 0, 10, 50)
	lp := s.net.AddLightpath("lp", []*memnet.Fiber{f2}, slotset.Of(0, 1, 4, 5, 8), nil, nil)
	s.m.AllocateLegitimate(lp, nil, nil, []netmodel.Fiber{f2}, slotset.Of(0, 1, 4, 5, 8))

	require.Equal([]int{2, 3, 6, 7, 9, 10}, s.m.IdleSlotIds(f2).Slice())
	require.Equal([]int{2, 6, 9}, s.m.IdleRangeInitialSlots(f2, 2).Slice())
	require.True(s.m.IdleRangeInitialSlots(f2, 3).IsEmpty())
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

// WithLogger(nil) must not panic on the next diagnostic call — it falls
// back to the discard logger, as documented.
func TestWithLoggerNilFallsBackToDiscard(t *testing.T) {
	require := require.New(t)

	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	f := net.AddFiber("F", a, b, 0, 10, 5)

	m := spectrum.New(net, spectrum.WithLogger(nil))
	lp := net.AddLightpath("lp", []*memnet.Fiber{f}, slotset.Of(1, 2), nil, nil)
	require.NotPanics(func() {
		require.NoError(m.AllocateLegitimate(lp, nil, nil, []netmodel.Fiber{f}, slotset.Of(1, 2)))
	})
}
