package regen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmcore/osm/internal/memnet"
	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/regen"
)

func lengths(segments [][]netmodel.Fiber) []float64 {
	out := make([]float64, len(segments))
	for i, seg := range segments {
		var total float64
		for _, f := range seg {
			total += f.LengthKm()
		}
		out[i] = total
	}
	return out
}

func TestRegenerationPointsPacksGreedily(t *testing.T) {
	require := require.New(t)
	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})

	f1 := net.AddFiber("F1", a, b, 0, 10, 400)
	f2 := net.AddFiber("F2", a, b, 0, 10, 400)
	f3 := net.AddFiber("F3", a, b, 0, 10, 400)
	f4 := net.AddFiber("F4", a, b, 0, 10, 100)

	segments, err := regen.RegenerationPoints([]netmodel.Fiber{f1, f2, f3, f4}, 1000)
	require.NoError(err)
	require.Len(segments, 2)
	require.Len(segments[0], 2) // F1+F2 = 800 <= 1000, +F3 would be 1200
	require.Len(segments[1], 2) // F3+F4 = 500
	for _, total := range lengths(segments) {
		require.LessOrEqual(total, 1000.0)
	}
}

func TestRegenerationPointsSingleFiberTooLong(t *testing.T) {
	require := require.New(t)
	net := memnet.New("net1")
	a := net.AddNode("A", memnet.SelectiveArch{})
	b := net.AddNode("B", memnet.SelectiveArch{})
	f := net.AddFiber("F", a, b, 0, 10, 1500)

	_, err := regen.RegenerationPoints([]netmodel.Fiber{f}, 1000)
	require.ErrorIs(err, regen.ErrFiberTooLong)
}

func TestRegenerationPointsEmpty(t *testing.T) {
	require := require.New(t)
	segments, err := regen.RegenerationPoints(nil, 1000)
	require.NoError(err)
	require.Nil(segments)
}
