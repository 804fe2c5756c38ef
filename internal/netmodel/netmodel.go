// Package netmodel declares the contracts the optical spectrum core borrows
// from the surrounding network-design framework: fibers, nodes, their
// switching architectures, lightpaths, and the network that owns them all.
//
// None of these types is implemented here — the framework that owns the
// topology model lives outside this module (spec: out of scope). This
// package only pins down the minimal, read-only surface the core depends
// on, mirroring the way lvlath/core separates its Graph/Vertex/Edge value
// types from the algorithms (dfs, dijkstra, ...) that consume them.
package netmodel

import "github.com/osmcore/osm/slotset"

// Identified gives every borrowed entity a stable, comparable identity key
// independent of however the owning framework represents it internally.
// Resource types used as SlotIndex keys and Lightpath all implement it.
type Identified interface {
	IdentityKey() string
}

// Fiber is a directed transmission link between two Nodes.
type Fiber interface {
	Identified

	// ValidSlotIds is the set of slot ids this fiber's transceivers/amplifiers
	// can carry.
	ValidSlotIds() *slotset.Set

	// MinMaxValidSlotID returns the inclusive bounds of ValidSlotIds.
	MinMaxValidSlotID() (min, max int)

	// LengthKm is this fiber's physical length, in kilometres.
	LengthKm() float64

	// IsBidirectional reports whether BidirectionalPair returns a distinct
	// partner fiber running the opposite direction over the same span.
	IsBidirectional() bool

	// BidirectionalPair returns the fiber running A()<->B() reversed. Only
	// meaningful when IsBidirectional is true.
	BidirectionalPair() Fiber

	// A is this fiber's origin node.
	A() Node

	// B is this fiber's destination node.
	B() Node

	// NetworkKey identifies the Network this fiber was created by, for
	// cross-network argument checks.
	NetworkKey() string
}

// Node is a switching point in the network.
type Node interface {
	Identified

	// Architecture is this node's optical switching architecture.
	Architecture() Arch

	// IncomingFibers lists every fiber whose B() is this node.
	IncomingFibers() []Fiber

	// NetworkKey identifies the Network this node was created by.
	NetworkKey() string
}

// Arch is a node's optical switching architecture: the rules governing how
// an incoming signal propagates to outgoing fibers, including unintended
// ("waste") propagation in filterless designs.
type Arch interface {
	// IsNeverCreatingWastedSpectrum reports whether every add/express/drop
	// operation at this node's switching fabric is fully selective, i.e. it
	// can never leak signal onto a fiber the operator did not intend.
	IsNeverCreatingWastedSpectrum() bool

	// OutFibersIfAddToOutputFiber returns the set of fibers that would carry
	// a signal added at this node with intended egress fiber out, including
	// any unintended ones the add-side switching fabric leaks to.
	OutFibersIfAddToOutputFiber(out Fiber) []Fiber

	// OutFibersIfExpressFromInputToOutputFiber returns the set of fibers
	// that would carry a signal expressing through this node from in to the
	// intended egress out, including unintended leakage.
	OutFibersIfExpressFromInputToOutputFiber(in, out Fiber) []Fiber

	// OutFibersUnavoidablePropagationFromInputFiber returns the fibers a
	// signal arriving on in is unavoidably propagated to by this node's
	// fabric, regardless of which lightpath the signal belongs to: this is
	// the basis of both waste-signal propagation and lasing-loop detection.
	OutFibersUnavoidablePropagationFromInputFiber(in Fiber) []Fiber
}

// Lightpath is a one-directional optical circuit with a fixed fiber sequence
// and slot-id set.
type Lightpath interface {
	Identified

	// SeqFibers is the ordered, contiguous sequence of fibers this
	// lightpath's legitimate signal traverses from its origin to its
	// destination.
	SeqFibers() []Fiber

	// OpticalSlotIds is the set of slot ids this lightpath occupies on
	// every fiber of SeqFibers and on its add/drop modules.
	OpticalSlotIds() *slotset.Set

	// AddModuleIndex is the directionless add-module index used at this
	// lightpath's origin, if any.
	AddModuleIndex() (index int, ok bool)

	// DropModuleIndex is the directionless drop-module index used at this
	// lightpath's destination, if any.
	DropModuleIndex() (index int, ok bool)

	// WasteResources is the triple of fibers, add-module indices, and
	// drop-module indices this lightpath's signal unintentionally reaches
	// because of filterless switching along its path, as computed by the
	// owning network from its topology and architectures.
	WasteResources() (fibers []Fiber, addModules []ModuleRef, dropModules []ModuleRef)

	// A is this lightpath's origin node.
	A() Node

	// B is this lightpath's destination node.
	B() Node

	// NetworkKey identifies the Network this lightpath was created by.
	NetworkKey() string
}

// ModuleRef identifies a directionless add- or drop-module: a transceiver
// bank shared across directions at a node, distinguished only by which
// index a given lightpath plugs into.
type ModuleRef struct {
	Node  Node
	Index int
}

// IdentityKey implements Identified.
func (m ModuleRef) IdentityKey() string {
	return m.Node.IdentityKey() + "#" + itoa(m.Index)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Network owns the fibers, nodes, and lightpaths the core indexes.
type Network interface {
	// Fibers lists every fiber in this network.
	Fibers() []Fiber

	// Nodes lists every node in this network.
	Nodes() []Node

	// Lightpaths lists every lightpath currently defined in this network.
	Lightpaths() []Lightpath

	// NodePairFibers returns every fiber whose A() is a and whose B() is b.
	NodePairFibers(a, b Node) []Fiber

	// NetworkKey is this network's own identity, compared against borrowed
	// entities' NetworkKey to detect cross-network misuse.
	NetworkKey() string
}
