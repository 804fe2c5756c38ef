package memnet

import "github.com/osmcore/osm/internal/netmodel"

// SelectiveArch models a fully wavelength-selective switching fabric: it
// never creates wasted spectrum, so every add/express/drop operation reaches
// exactly its intended egress fiber.
type SelectiveArch struct{}

func (SelectiveArch) IsNeverCreatingWastedSpectrum() bool { return true }

func (SelectiveArch) OutFibersIfAddToOutputFiber(out netmodel.Fiber) []netmodel.Fiber {
	return []netmodel.Fiber{out}
}

func (SelectiveArch) OutFibersIfExpressFromInputToOutputFiber(_, out netmodel.Fiber) []netmodel.Fiber {
	return []netmodel.Fiber{out}
}

func (SelectiveArch) OutFibersUnavoidablePropagationFromInputFiber(in netmodel.Fiber) []netmodel.Fiber {
	return nil
}

// BroadcastArch models a filterless broadcast-and-select fabric: a signal
// entering on any fiber (or added) unavoidably propagates to every fiber in
// Outputs, whether or not that fiber was the intended egress.
type BroadcastArch struct {
	Outputs []netmodel.Fiber
}

func (a BroadcastArch) IsNeverCreatingWastedSpectrum() bool { return false }

func (a BroadcastArch) OutFibersIfAddToOutputFiber(out netmodel.Fiber) []netmodel.Fiber {
	return a.Outputs
}

func (a BroadcastArch) OutFibersIfExpressFromInputToOutputFiber(_, _ netmodel.Fiber) []netmodel.Fiber {
	return a.Outputs
}

func (a BroadcastArch) OutFibersUnavoidablePropagationFromInputFiber(_ netmodel.Fiber) []netmodel.Fiber {
	return a.Outputs
}

// FuncArch adapts four plain functions into an Arch, for tests that need
// fine-grained, per-call control beyond what SelectiveArch/BroadcastArch
// offer (e.g. an express-only leak at one specific node).
type FuncArch struct {
	NeverWasting func() bool
	Add          func(out netmodel.Fiber) []netmodel.Fiber
	Express      func(in, out netmodel.Fiber) []netmodel.Fiber
	Unavoidable  func(in netmodel.Fiber) []netmodel.Fiber
}

func (a FuncArch) IsNeverCreatingWastedSpectrum() bool {
	if a.NeverWasting == nil {
		return false
	}
	return a.NeverWasting()
}

func (a FuncArch) OutFibersIfAddToOutputFiber(out netmodel.Fiber) []netmodel.Fiber {
	if a.Add == nil {
		return nil
	}
	return a.Add(out)
}

func (a FuncArch) OutFibersIfExpressFromInputToOutputFiber(in, out netmodel.Fiber) []netmodel.Fiber {
	if a.Express == nil {
		return nil
	}
	return a.Express(in, out)
}

func (a FuncArch) OutFibersUnavoidablePropagationFromInputFiber(in netmodel.Fiber) []netmodel.Fiber {
	if a.Unavoidable == nil {
		return nil
	}
	return a.Unavoidable(in)
}
