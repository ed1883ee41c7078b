package vsrtl

import "github.com/pkg/errors"

// Direction distinguishes input from output ports.
type Direction uint8

const (
	// Input ports read a single upstream output port.
	Input Direction = iota
	// Output ports compute their value from a ValueFunc closure.
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// ValueFunc computes an output port's value from whatever the component's
// construction closed over (its own input ports and its direct
// sub-components' output ports — never anything else, which is how
// invariant 4 is enforced at construction instead of at run time).
type ValueFunc func() uint64

// Port is a named, width-typed signal endpoint owned by a Component.
type Port struct {
	name      string
	parent    *Component
	direction Direction
	width     uint

	propagated bool
	isConstant bool

	source  *Port     // set for Input ports
	sinks   []*Port   // input ports fed directly from this output port
	fn      ValueFunc // set for Output ports
	cached  uint64
}

func newPort(parent *Component, name string, dir Direction, width uint) *Port {
	return &Port{name: name, parent: parent, direction: dir, width: width}
}

// Name returns the port's display name.
func (p *Port) Name() string { return p.name }

// Parent returns the Component that owns this port.
func (p *Port) Parent() *Component { return p.parent }

// Direction reports whether this is an input or output port.
func (p *Port) Direction() Direction { return p.direction }

// Width returns the port's bit width.
func (p *Port) Width() uint { return p.width }

// IsConstant reports whether this port belongs to an input-less component,
// i.e. its value is evaluated only at Initialize and Reset, never by the
// per-tick propagation flood.
func (p *Port) IsConstant() bool { return p.isConstant }

// IsConnected reports whether the port has a source (input) or a value
// function (output).
func (p *Port) IsConnected() bool {
	if p.direction == Input {
		return p.source != nil
	}
	return p.fn != nil
}

// Source returns the upstream output port feeding this input, or nil.
func (p *Port) Source() *Port { return p.source }

// Sinks returns the input ports directly fed by this output port.
func (p *Port) Sinks() []*Port { return p.sinks }

// setFn registers the value function for an output port. It currently
// has no callers: CreateOutputPort and SetValueFunc assign the function
// directly.
func (p *Port) setFn(fn ValueFunc) { p.fn = fn }

// Connect wires an input port to an upstream output port. Widths must
// match exactly and an input may only ever be connected once.
func (p *Port) Connect(src *Port) error {
	if p.direction != Input {
		return errors.Errorf("vsrtl: %s is not an input port", p.path())
	}
	if p.source != nil {
		return errors.Errorf("vsrtl: %s already connected to %s", p.path(), p.source.path())
	}
	if src.width != p.width {
		return errors.Wrapf(ErrWidthMismatch, "%s (%d bits) <- %s (%d bits)", p.path(), p.width, src.path(), src.width)
	}
	p.source = src
	src.sinks = append(src.sinks, p)
	return nil
}

// path returns a dotted path useful in error messages and diagnostics.
func (p *Port) path() string {
	if p.parent == nil {
		return p.name
	}
	return p.parent.Path() + "." + p.name
}

// RegisterObserver subscribes fn to the owning Component's changed signal,
// which fires at most once per clock tick after the component's outputs
// have been recomputed.
func (p *Port) RegisterObserver(fn func()) {
	p.parent.Changed.Connect(fn)
}

// Value returns the currently cached value. Reading an input port
// transparently forwards to its source. Reading an output port that has
// not yet been propagated this cycle is a programming error: the
// propagation algorithm guarantees this never happens for a well-formed,
// verified circuit.
func (p *Port) Value() uint64 {
	if p.direction == Input {
		return p.source.Value()
	}
	if !p.propagated {
		panic("vsrtl: read of unpropagated output port " + p.path())
	}
	return p.cached
}

// BitVector returns the port's current value as a width-typed BitVector.
func (p *Port) BitVector() BitVector { return NewBitVector(p.width, p.Value()) }

// Bool reads bit 0 of the port's value, the convention for 1-bit control
// signals such as enable/select lines.
func (p *Port) Bool() bool { return p.Value()&1 != 0 }

// Propagated reports whether the port's value is valid for the current
// cycle.
func (p *Port) Propagated() bool {
	if p.direction == Input {
		return p.source != nil && p.source.Propagated()
	}
	return p.propagated
}

// resetPropagation clears the propagated flag, except on constant ports
// which stay propagated forever once Initialize has run.
func (p *Port) resetPropagation() {
	if !p.isConstant {
		p.propagated = false
	}
}

// propagate evaluates an output port's value function, masks it to width,
// records a diagnostic on overflow, and caches the result. It is a no-op
// if already propagated this cycle.
func (p *Port) propagate(diag *Diagnostics) {
	if p.propagated {
		return
	}
	raw := p.fn()
	masked := mask(raw, p.width)
	if masked != raw && diag != nil {
		diag.record(Anomaly{
			Component: p.parent.Path(),
			Port:      p.name,
			Width:     p.width,
			Raw:       raw,
			Masked:    masked,
		})
	}
	p.cached = masked
	p.propagated = true
}

// propagateConstant (re-)evaluates a constant (input-less component)
// output unconditionally, without the already-propagated guard
// Port.propagate uses to stay idempotent within a single flood (spec
// §4.2: "marks propagated without dependency checks"). It runs once per
// Initialize/Reset call, which is what lets a rtllib.Input's Set take
// effect across a Design.Reset even though its port otherwise never
// resets to unpropagated (component.go's resetPropagation skips
// input-less components once they have propagated at all).
func (p *Port) propagateConstant(diag *Diagnostics) {
	p.isConstant = true
	raw := p.fn()
	masked := mask(raw, p.width)
	if masked != raw && diag != nil {
		diag.record(Anomaly{
			Component: p.parent.Path(),
			Port:      p.name,
			Width:     p.width,
			Raw:       raw,
			Masked:    masked,
		})
	}
	p.cached = masked
	p.propagated = true
}
