// Package memnet is a minimal in-memory stand-in for the network-design
// framework's topology model, implementing the netmodel contracts so the
// spectrum, assign, propagate, and regen packages can be exercised without
// depending on the real (out-of-scope) framework.
//
// It is deliberately small: a handful of value types plus a builder,
// following the functional-construction idiom of lvlath/builder
// (BuildGraph + Constructor closures) adapted to this package's fixed,
// non-randomized fixtures.
package memnet

import (
	"fmt"
	"sort"

	"github.com/osmcore/osm/internal/netmodel"
	"github.com/osmcore/osm/slotset"
)

// Network is a fixed collection of fibers, nodes, and lightpaths sharing one
// identity key.
type Network struct {
	key        string
	fibers     []*Fiber
	nodes      []*Node
	lightpaths []*Lightpath
}

// New creates an empty Network identified by key.
func New(key string) *Network {
	return &Network{key: key}
}

func (n *Network) NetworkKey() string { return n.key }

func (n *Network) Fibers() []netmodel.Fiber {
	out := make([]netmodel.Fiber, len(n.fibers))
	for i, f := range n.fibers {
		out[i] = f
	}
	return out
}

func (n *Network) Nodes() []netmodel.Node {
	out := make([]netmodel.Node, len(n.nodes))
	for i, v := range n.nodes {
		out[i] = v
	}
	return out
}

func (n *Network) Lightpaths() []netmodel.Lightpath {
	out := make([]netmodel.Lightpath, len(n.lightpaths))
	for i, lp := range n.lightpaths {
		out[i] = lp
	}
	return out
}

func (n *Network) NodePairFibers(a, b netmodel.Node) []netmodel.Fiber {
	var out []netmodel.Fiber
	for _, f := range n.fibers {
		if f.a.IdentityKey() == a.IdentityKey() && f.b.IdentityKey() == b.IdentityKey() {
			out = append(out, f)
		}
	}
	return out
}

// AddNode creates and registers a Node with the given id and switching
// architecture.
func (n *Network) AddNode(id string, arch netmodel.Arch) *Node {
	v := &Node{key: n.key, id: id, arch: arch}
	n.nodes = append(n.nodes, v)
	return v
}

// AddFiber creates and registers a unidirectional Fiber a->b with the given
// valid slot range and length.
func (n *Network) AddFiber(id string, a, b *Node, minSlot, maxSlot int, lengthKm float64) *Fiber {
	f := &Fiber{
		key: n.key, id: id, a: a, b: b,
		valid: slotset.FromRange(minSlot, maxSlot), lengthKm: lengthKm,
	}
	n.fibers = append(n.fibers, f)
	a.outgoing = append(a.outgoing, f)
	b.incoming = append(b.incoming, f)
	return f
}

// AddBidiFiberPair creates fiber a->b and its reverse b->a and pairs them.
func (n *Network) AddBidiFiberPair(idFwd, idRev string, a, b *Node, minSlot, maxSlot int, lengthKm float64) (fwd, rev *Fiber) {
	fwd = n.AddFiber(idFwd, a, b, minSlot, maxSlot, lengthKm)
	rev = n.AddFiber(idRev, b, a, minSlot, maxSlot, lengthKm)
	fwd.pair = rev
	rev.pair = fwd
	return fwd, rev
}

// AddLightpath creates and registers a Lightpath over seq with the given
// occupied slots and optional add/drop module indices. Waste resources must
// be attached separately via Lightpath.SetWaste, mirroring how the real
// framework derives them from topology after construction.
func (n *Network) AddLightpath(id string, seq []*Fiber, slots *slotset.Set, addMod, dropMod *int) *Lightpath {
	lp := &Lightpath{key: n.key, id: id, seq: seq, slots: slots, addMod: addMod, dropMod: dropMod}
	n.lightpaths = append(n.lightpaths, lp)
	return lp
}

// Node is a switching point with a pluggable Arch.
type Node struct {
	key      string
	id       string
	arch     netmodel.Arch
	incoming []*Fiber
	outgoing []*Fiber
}

func (v *Node) IdentityKey() string         { return v.key + "/" + v.id }
func (v *Node) NetworkKey() string          { return v.key }
func (v *Node) Architecture() netmodel.Arch { return v.arch }

// SetArch replaces this node's switching architecture, letting tests build
// node/fiber topology first and wire in an architecture that closes over
// the resulting fiber handles afterward.
func (v *Node) SetArch(arch netmodel.Arch) { v.arch = arch }
func (v *Node) IncomingFibers() []netmodel.Fiber {
	out := make([]netmodel.Fiber, len(v.incoming))
	for i, f := range v.incoming {
		out[i] = f
	}
	return out
}

// Fiber is a directed link a->b with a valid slot range.
type Fiber struct {
	key      string
	id       string
	a, b     *Node
	valid    *slotset.Set
	lengthKm float64
	pair     *Fiber
}

func (f *Fiber) IdentityKey() string          { return f.key + "/" + f.id }
func (f *Fiber) NetworkKey() string           { return f.key }
func (f *Fiber) ValidSlotIds() *slotset.Set    { return f.valid.Clone() }
func (f *Fiber) LengthKm() float64            { return f.lengthKm }
func (f *Fiber) IsBidirectional() bool        { return f.pair != nil }
func (f *Fiber) BidirectionalPair() netmodel.Fiber {
	if f.pair == nil {
		return nil
	}
	return f.pair
}
func (f *Fiber) A() netmodel.Node { return f.a }
func (f *Fiber) B() netmodel.Node { return f.b }

func (f *Fiber) MinMaxValidSlotID() (int, int) {
	s := f.valid.Slice()
	if len(s) == 0 {
		return 0, -1
	}
	return s[0], s[len(s)-1]
}

func (f *Fiber) String() string { return fmt.Sprintf("%s(%s->%s)", f.id, f.a.id, f.b.id) }

// Lightpath is a fixed fiber sequence plus occupied slots.
type Lightpath struct {
	key            string
	id             string
	seq            []*Fiber
	slots          *slotset.Set
	addMod, dropMod *int
	wasteFibers    []*Fiber
	wasteAdd       []netmodel.ModuleRef
	wasteDrop      []netmodel.ModuleRef
}

func (lp *Lightpath) IdentityKey() string { return lp.key + "/" + lp.id }
func (lp *Lightpath) NetworkKey() string  { return lp.key }

func (lp *Lightpath) SeqFibers() []netmodel.Fiber {
	out := make([]netmodel.Fiber, len(lp.seq))
	for i, f := range lp.seq {
		out[i] = f
	}
	return out
}

func (lp *Lightpath) OpticalSlotIds() *slotset.Set { return lp.slots.Clone() }

func (lp *Lightpath) AddModuleIndex() (int, bool) {
	if lp.addMod == nil {
		return 0, false
	}
	return *lp.addMod, true
}

func (lp *Lightpath) DropModuleIndex() (int, bool) {
	if lp.dropMod == nil {
		return 0, false
	}
	return *lp.dropMod, true
}

// SetWaste attaches this lightpath's waste-signal resources, as the
// framework's propagation computation would have derived them.
func (lp *Lightpath) SetWaste(fibers []*Fiber, addMods, dropMods []netmodel.ModuleRef) {
	lp.wasteFibers = fibers
	lp.wasteAdd = addMods
	lp.wasteDrop = dropMods
}

func (lp *Lightpath) WasteResources() ([]netmodel.Fiber, []netmodel.ModuleRef, []netmodel.ModuleRef) {
	out := make([]netmodel.Fiber, len(lp.wasteFibers))
	for i, f := range lp.wasteFibers {
		out[i] = f
	}
	return out, lp.wasteAdd, lp.wasteDrop
}

func (lp *Lightpath) A() netmodel.Node {
	if len(lp.seq) == 0 {
		return nil
	}
	return lp.seq[0].a
}

func (lp *Lightpath) B() netmodel.Node {
	if len(lp.seq) == 0 {
		return nil
	}
	return lp.seq[len(lp.seq)-1].b
}

// sortByKey sorts any Identified slice by IdentityKey, for callers that need
// deterministic diagnostic output. Nothing in this module calls it.
func sortByKey[T netmodel.Identified](items []T) {
	sort.Slice(items, func(i, j int) bool { return items[i].IdentityKey() < items[j].IdentityKey() })
}
