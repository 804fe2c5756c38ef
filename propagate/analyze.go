package propagate

import "github.com/osmcore/osm/internal/netmodel"

// Result is the outcome of analysing how a signal propagates along a
// candidate unicast path.
type Result struct {
	// Propagated is every fiber the signal unavoidably reaches, including
	// links and any waste leakage. Always a superset of the input path
	// unless the never-wasting shortcut applies, in which case it equals it.
	Propagated []netmodel.Fiber

	// Cycles is every simple directed lasing loop found in the propagation
	// graph, each a closed fiber sequence [f0, f1, ..., f0].
	Cycles [][]netmodel.Fiber

	// MultipathOk is true iff every fiber on the legitimate path, and the
	// synthetic drop vertex, receives the signal exactly once (in-degree 1
	// in the propagation graph).
	MultipathOk bool
}

// Analyze builds the propagation graph for links — an ordered, contiguous
// unicast path where each fiber's B() node is the next fiber's A() node —
// and reports every fiber the signal reaches, any lasing loops, and whether
// the path stays multipath-free.
func Analyze(links []netmodel.Fiber) (*Result, error) {
	if len(links) == 0 {
		return nil, ErrEmptyPath
	}

	if allNeverWasting(links) {
		return &Result{
			Propagated:  append([]netmodel.Fiber(nil), links...),
			Cycles:      nil,
			MultipathOk: true,
		}, nil
	}

	linkIndex := make(map[string]int, len(links))
	for i, f := range links {
		linkIndex[f.IdentityKey()] = i
	}

	g := newFiberGraph()
	g.addVertex(dummyAddID, nil)

	visited := map[string]bool{dummyAddID: true}
	worklist := []string{dummyAddID}

	enqueue := func(id string, f netmodel.Fiber) {
		g.addVertex(id, f)
		if !visited[id] {
			visited[id] = true
			worklist = append(worklist, id)
		}
	}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		switch id {
		case dummyAddID:
			origin := links[0].A()
			for _, p := range origin.Architecture().OutFibersIfAddToOutputFiber(links[0]) {
				pid := p.IdentityKey()
				enqueue(pid, p)
				g.addEdge(dummyAddID, pid)
			}
		case dummyDropID:
			// terminal: no outgoing edges
		default:
			f := g.fiberOf[id]
			node := f.B()
			for _, p := range node.Architecture().OutFibersUnavoidablePropagationFromInputFiber(f) {
				pid := p.IdentityKey()
				enqueue(pid, p)
				g.addEdge(id, pid)
			}

			if idx, onPath := linkIndex[id]; onPath {
				if idx < len(links)-1 {
					out := links[idx+1]
					for _, p := range node.Architecture().OutFibersIfExpressFromInputToOutputFiber(f, out) {
						pid := p.IdentityKey()
						enqueue(pid, p)
						g.addEdge(id, pid)
					}
				}
				if idx == len(links)-1 {
					enqueue(dummyDropID, nil)
					g.addEdge(id, dummyDropID)
				}
			}
		}
	}

	if !visited[dummyDropID] {
		return nil, ErrSignalNotReachingDrop
	}

	propagated := g.fibers()

	multipathOk := g.inDegree(dummyDropID) == 1
	if multipathOk {
		for _, f := range links {
			if g.inDegree(f.IdentityKey()) != 1 {
				multipathOk = false
				break
			}
		}
	}

	cycles := cyclesAsFibers(g, detectCycles(g))

	return &Result{
		Propagated:  propagated,
		Cycles:      cycles,
		MultipathOk: multipathOk,
	}, nil
}

// allNeverWasting reports whether every node touched by links — the origin
// plus every fiber's destination — has a switching architecture that never
// creates wasted spectrum, the step-2 shortcut condition.
func allNeverWasting(links []netmodel.Fiber) bool {
	if !links[0].A().Architecture().IsNeverCreatingWastedSpectrum() {
		return false
	}
	for _, f := range links {
		if !f.B().Architecture().IsNeverCreatingWastedSpectrum() {
			return false
		}
	}
	return true
}

func cyclesAsFibers(g *fiberGraph, idCycles [][]string) [][]netmodel.Fiber {
	if len(idCycles) == 0 {
		return nil
	}
	out := make([][]netmodel.Fiber, 0, len(idCycles))
	for _, idCycle := range idCycles {
		fc := make([]netmodel.Fiber, 0, len(idCycle))
		for _, id := range idCycle {
			if f, ok := g.fiberOf[id]; ok {
				fc = append(fc, f)
			}
		}
		out = append(out, fc)
	}
	return out
}
