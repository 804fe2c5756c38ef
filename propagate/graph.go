package propagate

import "github.com/osmcore/osm/internal/netmodel"

// dummyAddID and dummyDropID are synthetic vertex ids that never collide
// with a real fiber's IdentityKey, which the rest of the core always
// produces from non-empty, NUL-free identifiers.
const (
	dummyAddID  = "\x00propagate:add"
	dummyDropID = "\x00propagate:drop"
)

// fiberGraph is a sparse directed adjacency map over fiber identity keys,
// plus the two synthetic add/drop vertices. It never exceeds
// len(fibers)+2 vertices.
type fiberGraph struct {
	adj     map[string][]string
	fiberOf map[string]netmodel.Fiber // no entry for the two dummy vertices
	order   []string                 // vertex insertion order, for deterministic traversal
}

func newFiberGraph() *fiberGraph {
	return &fiberGraph{
		adj:     make(map[string][]string),
		fiberOf: make(map[string]netmodel.Fiber),
	}
}

func (g *fiberGraph) hasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

func (g *fiberGraph) addVertex(id string, f netmodel.Fiber) {
	if g.hasVertex(id) {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
	if f != nil {
		g.fiberOf[id] = f
	}
}

func (g *fiberGraph) addEdge(from, to string) {
	g.adj[from] = append(g.adj[from], to)
}

// inDegree counts edges landing on id across the whole graph.
func (g *fiberGraph) inDegree(id string) int {
	n := 0
	for _, outs := range g.adj {
		for _, to := range outs {
			if to == id {
				n++
			}
		}
	}
	return n
}

// fibers returns every non-dummy vertex's fiber, in insertion order.
func (g *fiberGraph) fibers() []netmodel.Fiber {
	out := make([]netmodel.Fiber, 0, len(g.order))
	for _, id := range g.order {
		if f, ok := g.fiberOf[id]; ok {
			out = append(out, f)
		}
	}
	return out
}
