package vsrtl

import "github.com/pkg/errors"

// propState mirrors PropagationState in the system this engine descends
// from: a component (and each of its ports) is either still waiting on
// its inputs, or has a valid cached value for the current cycle.
type propState uint8

const (
	unpropagated propState = iota
	propagated
)

// Component is a node in the hierarchical circuit graph. It owns its
// input/output ports and any sub-components; its parent is referenced,
// not owned, so the graph never develops reference cycles through shared
// ownership.
type Component struct {
	name   string
	parent *Component

	inputs  []*Port
	outputs []*Port
	subs    []*Component

	state    propState
	verified bool

	special map[string]*Port

	typeID     string
	isRegister bool
	// clocked is non-nil for components whose output is fixed by a save
	// phase rather than recomputed from currently-propagated inputs
	// (registers, memories). Combinational components leave it nil.
	clocked Clocked

	// Changed fires synchronously at most once per clock tick, after this
	// component's outputs have been recomputed. The external visual layer
	// subscribes to it.
	Changed Signal
}

// NewComponent creates a detached component with the given display name
// and type identifier (used by the visual layer to pick a glyph).
// Callers typically embed *Component in a richer struct (see rtllib) and
// finish wiring it in their own constructor.
func NewComponent(name, typeID string) *Component {
	return &Component{name: name, typeID: typeID}
}

// Name returns the component's display name.
func (c *Component) Name() string { return c.name }

// Parent returns the owning Component, or nil for the Design's root.
func (c *Component) Parent() *Component { return c.parent }

// Path returns the dotted name path from the root Component to this one.
func (c *Component) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + "." + c.name
}

// TypeID returns the opaque type identifier the visual layer uses to pick
// a glyph.
func (c *Component) TypeID() string { return c.typeID }

// IsRegister reports whether this component is specifically a register,
// as opposed to some other clocked component (e.g. a memory), which the
// visual layer draws differently.
func (c *Component) IsRegister() bool { return c.isRegister }

// SetRegister marks the component as a register for IsRegister/TypeID
// purposes. Called by rtllib.Register's constructor.
func (c *Component) SetRegister() { c.isRegister = true }

// SubComponents returns the component's direct sub-components, in
// declaration order.
func (c *Component) SubComponents() []*Component { return c.subs }

// InputPorts returns the component's input ports, in declaration order.
func (c *Component) InputPorts() []*Port { return c.inputs }

// OutputPorts returns the component's output ports, in declaration order.
func (c *Component) OutputPorts() []*Port { return c.outputs }

// SpecialPort looks up a port registered under a visual-layer role name
// (e.g. "select" on a multiplexer).
func (c *Component) SpecialPort(role string) (*Port, bool) {
	p, ok := c.special[role]
	return p, ok
}

// SetSpecialPort registers a port under a visual-layer role name.
func (c *Component) SetSpecialPort(role string, p *Port) {
	if c.special == nil {
		c.special = make(map[string]*Port)
	}
	c.special[role] = p
}

// AddSubComponent takes ownership of child: child.parent is set to c and
// child is appended to c's sub-component list.
func (c *Component) AddSubComponent(child *Component) *Component {
	child.parent = c
	c.subs = append(c.subs, child)
	return child
}

// CreateInputPort appends a new input port to the component.
func (c *Component) CreateInputPort(name string, width uint) *Port {
	p := newPort(c, name, Input, width)
	c.inputs = append(c.inputs, p)
	return p
}

// CreateOutputPort appends a new output port with the given value
// function. fn may be nil and supplied later with SetValueFunc, which is
// useful when the function needs to close over sibling ports created
// after this call.
func (c *Component) CreateOutputPort(name string, width uint, fn ValueFunc) *Port {
	p := newPort(c, name, Output, width)
	p.fn = fn
	c.outputs = append(c.outputs, p)
	return p
}

// SetValueFunc attaches (or replaces) an output port's value function.
// The function must only read this component's own input ports and the
// output ports of its direct sub-components (invariant 4); this is
// enforced by construction discipline rather than by the type system.
func (c *Component) SetValueFunc(p *Port, fn ValueFunc) {
	p.fn = fn
}

// SetClocked marks the component as clocked, supplying its save/reverse
// capability. Called once, by a clocked primitive's own constructor,
// after the primitive itself (which implements Clocked) exists.
func (c *Component) SetClocked(cl Clocked) { c.clocked = cl }

// ClockedImpl returns the component's save/reverse capability, or nil if the
// component is purely combinational.
func (c *Component) ClockedImpl() Clocked { return c.clocked }

// InputComponents returns, for each input port, the parent component of
// that port's source output port. A component may appear more than once
// when several ports connect to it.
func (c *Component) InputComponents() []*Component {
	out := make([]*Component, 0, len(c.inputs))
	for _, ip := range c.inputs {
		if ip.source != nil {
			out = append(out, ip.source.parent)
		}
	}
	return out
}

// OutputComponents returns, for each output port, the parent components
// of every port it feeds.
func (c *Component) OutputComponents() []*Component {
	var out []*Component
	for _, op := range c.outputs {
		for _, sink := range op.sinks {
			out = append(out, sink.parent)
		}
	}
	return out
}

// verify applies invariants 1 and 2 (every input connected, matching
// widths, no zero-width port) to this component and recurses into its
// sub-components. The
// absence of combinational cycles is checked once, globally, by
// Design.Verify after the whole tree has been walked.
func (c *Component) verify() error {
	for _, ip := range c.inputs {
		if !ip.IsConnected() {
			return errors.Wrapf(ErrUnconnectedInput, "%s", ip.path())
		}
		if ip.width == 0 {
			return errors.Wrapf(ErrZeroWidth, "%s", ip.path())
		}
		if ip.source.width != ip.width {
			return errors.Wrapf(ErrWidthMismatch, "%s (%d bits) <- %s (%d bits)",
				ip.path(), ip.width, ip.source.path(), ip.source.width)
		}
	}
	for _, op := range c.outputs {
		if op.width == 0 {
			return errors.Wrapf(ErrZeroWidth, "%s", op.path())
		}
	}
	for _, sc := range c.subs {
		if err := sc.verify(); err != nil {
			return err
		}
	}
	c.verified = true
	return nil
}

// resetPropagation sets this component and every port it owns back to
// unpropagated, then recurses into sub-components. Constant (input-less)
// components, once initialized, stay propagated forever; constant ports
// likewise never reset. Sub-components of an input-less component (such
// as the root) are still reset.
func (c *Component) resetPropagation() {
	if len(c.inputs) == 0 && c.state == propagated {
		// Constants (components with no inputs) are always propagated.
		for _, sc := range c.subs {
			sc.resetPropagation()
		}
		return
	}
	c.state = unpropagated
	for _, ip := range c.inputs {
		ip.resetPropagation()
	}
	for _, op := range c.outputs {
		op.resetPropagation()
	}
	for _, sc := range c.subs {
		sc.resetPropagation()
	}
}

// initialize propagates the outputs of every input-less (constant)
// component in the tree and marks them propagated.
func (c *Component) initialize(diag *Diagnostics) {
	if len(c.inputs) == 0 {
		for _, op := range c.outputs {
			op.propagateConstant(diag)
		}
		c.state = propagated
	}
	for _, sc := range c.subs {
		sc.initialize(diag)
	}
}

// tryPropagate attempts to bring this single component up to date for the
// current cycle, following the demand-driven propagation flood. It
// returns true once the component is (or already was) propagated, and
// false if it is still waiting on an input. It never recurses into
// fan-out; that is the Design-level work-list's job, to keep the flood
// iterative rather than stack-recursive.
func (c *Component) tryPropagate(diag *Diagnostics) bool {
	if c.state == propagated {
		return true
	}

	if c.clocked != nil {
		// The clocked component's output for this cycle was already
		// fixed by the save phase; just publish it.
		c.state = propagated
		for _, op := range c.outputs {
			op.propagate(diag)
		}
		c.Changed.Emit()
		return true
	}

	for _, ip := range c.inputs {
		if !ip.Propagated() {
			return false
		}
	}

	for _, sc := range c.subs {
		sc.tryPropagate(diag)
	}
	// Sub-components that are not yet ready will be revisited by the
	// work-list once their own inputs become available; this component
	// can only finish once every output's dependencies (its own inputs,
	// already checked above, and its sub-components' outputs) are ready.
	for _, op := range c.outputs {
		if !outputReady(op, diag) {
			return false
		}
	}
	for _, op := range c.outputs {
		op.propagate(diag)
	}
	c.state = propagated
	c.Changed.Emit()
	return true
}

// outputReady is a defensive check used only to decide whether a parent
// component can safely call an output's value function yet. A verified
// circuit never actually blocks here for long: invariant 4 restricts a
// value function to this component's own inputs (already confirmed
// ready) and direct sub-component outputs, so readiness reduces to "have
// all direct sub-components finished propagating".
func outputReady(op *Port, diag *Diagnostics) bool {
	for _, sc := range op.parent.subs {
		if sc.state != propagated && sc.clocked == nil {
			return false
		}
	}
	return true
}
