package propagate

import "github.com/osmcore/osm/internal/netmodel"

// UnavoidableLasingLoops builds the global fiber-to-fiber propagation graph
// for net — every node's OutFibersUnavoidablePropagationFromInputFiber
// applied to each of its incoming fibers — and returns every simple
// directed cycle found, regardless of any particular lightpath's path. Each
// cycle is a closed fiber sequence [f0, f1, ..., f0].
func UnavoidableLasingLoops(net netmodel.Network) [][]netmodel.Fiber {
	g := newFiberGraph()

	for _, f := range net.Fibers() {
		g.addVertex(f.IdentityKey(), f)
	}

	for _, n := range net.Nodes() {
		arch := n.Architecture()
		for _, in := range n.IncomingFibers() {
			inID := in.IdentityKey()
			g.addVertex(inID, in)
			for _, p := range arch.OutFibersUnavoidablePropagationFromInputFiber(in) {
				pid := p.IdentityKey()
				g.addVertex(pid, p)
				g.addEdge(inID, pid)
			}
		}
	}

	return cyclesAsFibers(g, detectCycles(g))
}
