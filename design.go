package vsrtl

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Design is the simulation engine's top-level handle: one root Component
// plus the bookkeeping (diagnostics, run identity, concurrency guard)
// that isn't itself part of the circuit graph. Only a single goroutine
// may drive a given Design at a time; mu enforces that rather than
// leaving it to convention.
type Design struct {
	mu sync.Mutex

	root *Component

	tickCount uint64
	runID     xid.ID

	Diagnostics Diagnostics

	reverseCapacity int
}

// DefaultReverseCapacity mirrors VSRTL's rewindStackSize() default.
const DefaultReverseCapacity = 100

// Option configures a Design at construction time.
type Option func(*Design)

// WithReverseCapacity bounds how many clock ticks Reverse can undo. A
// value <= 0 disables reversal entirely (CanReverse always false).
func WithReverseCapacity(n int) Option {
	return func(d *Design) { d.reverseCapacity = n }
}

// NewDesign wraps root as a Design, ready for Verify/Initialize, and
// applies the reverse capacity to every clocked primitive already in the
// tree.
func NewDesign(root *Component, opts ...Option) *Design {
	d := &Design{root: root, reverseCapacity: DefaultReverseCapacity, runID: xid.New()}
	for _, opt := range opts {
		opt(d)
	}
	walkClocked(root, func(cl Clocked) {
		if tr, ok := cl.(capacityTruncator); ok {
			tr.TruncateReverseStack(d.reverseCapacity)
		}
	})
	return d
}

// RunID returns the identity stamped on this Design at construction,
// useful for correlating diagnostics or traces across multiple runs of
// the same circuit within one process.
func (d *Design) RunID() string { return d.runID.String() }

// Root returns the Design's root Component.
func (d *Design) Root() *Component { return d.root }

// TickCount returns the number of Clock() calls since the last Reset,
// less the number undone by Reverse.
func (d *Design) TickCount() uint64 { return d.tickCount }

// ReverseCapacity returns the configured bound on undoable ticks.
func (d *Design) ReverseCapacity() int { return d.reverseCapacity }

// SetReverseCapacity changes the bound at runtime. Shrinking it discards
// the oldest saved states first, immediately, in every clocked component
// in the tree, rather than lazily on the next save.
func (d *Design) SetReverseCapacity(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reverseCapacity = n
	walkClocked(d.root, func(cl Clocked) {
		if tr, ok := cl.(capacityTruncator); ok {
			tr.TruncateReverseStack(n)
		}
	})
}

// capacityTruncator is implemented by clocked primitives whose reverse
// stack can be shrunk in place (rtllib.Register, rtllib.Memory).
type capacityTruncator interface {
	TruncateReverseStack(n int)
}

// Verify walks the whole tree checking invariants 1 (every input
// connected, matching widths) and 2 (every port has a nonzero width), then
// checks invariant 3 (no combinational cycles) globally. It must succeed
// before Initialize or Clock may be called.
func (d *Design) Verify() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.root.verify(); err != nil {
		return err
	}
	return detectCombinationalCycle(d.root)
}

// Initialize propagates every constant (input-less component) in the
// tree, then runs one full propagation flood so every port has a valid
// value before the first Clock call.
func (d *Design) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root.initialize(&d.Diagnostics)
	return d.propagate()
}

// Propagate runs the demand-driven propagation flood to quiescence
// without advancing the clock. It does not re-evaluate input-less
// components: a value changed with an Input primitive's Set is picked up
// by Initialize or Reset, not by Propagate.
func (d *Design) Propagate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.propagate()
}

// propagate runs the flood assuming d.mu is already held.
func (d *Design) propagate() error {
	work := collectComponents(d.root)
	for {
		pending, progressed := 0, false
		for _, c := range work {
			if c.state == propagated {
				continue
			}
			if c.tryPropagate(&d.Diagnostics) {
				progressed = true
			} else {
				pending++
			}
		}
		if pending == 0 {
			return nil
		}
		if !progressed {
			// Every verified, cycle-free circuit reaches quiescence; this
			// only fires if Verify was skipped or the tree was mutated
			// after verification.
			return errors.Wrap(ErrCombinationalCycle, "propagation stalled")
		}
	}
}

// Clock advances the simulation by one cycle: save, reset propagation
// state, then flood-propagate.
func (d *Design) Clock() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	walkClocked(d.root, func(cl Clocked) { cl.Save() })
	d.root.resetPropagation()
	d.tickCount++
	return d.propagate()
}

// CanReverse reports whether Reverse would undo anything. It is true
// only when every clocked component in the tree has at least one saved
// state to pop (ticks are undone atomically across the whole circuit).
func (d *Design) CanReverse() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tickCount == 0 {
		return false
	}
	ok := true
	walkClocked(d.root, func(cl Clocked) {
		if cl.ReverseDepth() == 0 {
			ok = false
		}
	})
	return ok
}

// Reverse undoes the most recent Clock call across every clocked
// component, then re-propagates. It is a no-op if CanReverse is false.
func (d *Design) Reverse() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	ok := d.tickCount > 0
	walkClocked(d.root, func(cl Clocked) {
		if cl.ReverseDepth() == 0 {
			ok = false
		}
	})
	if !ok {
		return nil
	}
	walkClocked(d.root, func(cl Clocked) { cl.Reverse() })
	d.tickCount--
	d.root.resetPropagation()
	return d.propagate()
}

// Reset returns every clocked component to its construction-time state,
// clears all reverse history, and re-runs Initialize.
func (d *Design) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	walkClocked(d.root, func(cl Clocked) { cl.ResetState() })
	d.tickCount = 0
	d.root.resetPropagation()
	d.root.initialize(&d.Diagnostics)
	return d.propagate()
}

func walkClocked(c *Component, fn func(Clocked)) {
	if c.clocked != nil {
		fn(c.clocked)
	}
	for _, sc := range c.subs {
		walkClocked(sc, fn)
	}
}

func collectComponents(c *Component) []*Component {
	out := []*Component{c}
	for _, sc := range c.subs {
		out = append(out, collectComponents(sc)...)
	}
	return out
}

// detectCombinationalCycle runs a scratch propagation flood to decide
// invariant 3. Clocked components always propagate trivially (they
// publish whatever save() already latched), so a feedback loop that
// passes through one is legal sequential feedback, not a violation; only
// a flood that stalls with purely combinational components still
// unpropagated indicates a genuine cycle. The dry run's propagated flags
// are cleared again afterwards so it leaves no trace for the real
// Initialize to contend with.
func detectCombinationalCycle(root *Component) error {
	work := collectComponents(root)
	resetAll := func() {
		for _, c := range work {
			c.state = unpropagated
			for _, p := range c.inputs {
				p.propagated = false
			}
			for _, p := range c.outputs {
				p.propagated = false
			}
		}
	}
	resetAll()

	var scratch Diagnostics
	root.initialize(&scratch)

	for {
		pending, progressed := 0, false
		for _, c := range work {
			if c.state == propagated {
				continue
			}
			if c.tryPropagate(&scratch) {
				progressed = true
			} else {
				pending++
			}
		}
		if pending == 0 {
			resetAll()
			return nil
		}
		if !progressed {
			resetAll()
			return errors.Wrap(ErrCombinationalCycle, "cycle detected during verification")
		}
	}
}
