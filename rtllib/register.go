// Package rtllib is the primitive library built on top of the vsrtl
// engine: registers, memories, multiplexers, and the arithmetic/logic
// gates a circuit is composed from. Every primitive here is just a
// *vsrtl.Component (or a vsrtl.ClockedComponent) wired up in its own
// constructor.
package rtllib

import "github.com/db47h/vsrtl"

// DefaultReverseDepth mirrors vsrtl.DefaultReverseCapacity; a Register
// constructed with NewRegister uses it unless told otherwise.
const DefaultReverseDepth = vsrtl.DefaultReverseCapacity

// Register is a clocked one-slot store: its output for a cycle is fixed
// by the value DataIn held at the most recent Save with Enable asserted,
// decoupling it from whatever DataIn reads during the cycle itself.
type Register struct {
	vsrtl.ClockedComponent

	DataIn  *vsrtl.Port
	Enable  *vsrtl.Port
	DataOut *vsrtl.Port

	width   uint
	saved   uint64
	history []uint64 // front = most recently saved; bounded by capacity
	cap     int
}

// NewRegister builds a width-bit register and registers it with parent
// under name.
func NewRegister(parent *vsrtl.Component, name string, width uint) *Register {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "register"))
	c.SetRegister()

	r := &Register{
		ClockedComponent: vsrtl.ClockedComponent{Component: c},
		width:            width,
		cap:              DefaultReverseDepth,
	}
	r.DataIn = c.CreateInputPort("data_in", width)
	r.Enable = c.CreateInputPort("enable", 1)
	r.DataOut = c.CreateOutputPort("data_out", width, func() uint64 { return r.saved })
	c.SetClocked(r)
	return r
}

// Save latches DataIn's current value as the register's output for the
// next cycle when Enable is asserted; otherwise the register holds its
// value. Either way a reverse-history entry is pushed, so Reverse always
// pops exactly one entry per elapsed tick.
func (r *Register) Save() {
	r.history = append([]uint64{r.saved}, r.history...)
	if len(r.history) > r.cap {
		r.history = r.history[:r.cap]
	}
	if r.Enable.Bool() {
		r.saved = r.DataIn.Value()
	}
}

// Reverse pops the most recently pushed value back into saved. No-op if
// there is nothing to pop.
func (r *Register) Reverse() {
	if len(r.history) == 0 {
		return
	}
	r.saved = r.history[0]
	r.history = r.history[1:]
}

// ResetState zeroes the register and clears all reverse history, as if
// freshly constructed.
func (r *Register) ResetState() {
	r.saved = 0
	r.history = nil
}

// ReverseDepth reports how many Reverse calls are currently available.
func (r *Register) ReverseDepth() int { return len(r.history) }

// TruncateReverseStack drops the oldest saved states until at most n
// remain, and remembers n as the capacity for future Saves.
func (r *Register) TruncateReverseStack(n int) {
	if n < 0 {
		n = 0
	}
	r.cap = n
	if len(r.history) > n {
		r.history = r.history[:n]
	}
}

// ForceValue overwrites the register's current output directly, bypassing
// Save/Reverse entirely: a forced value is a modification of present
// state, not a new state transition, so it leaves no reverse history
// behind it.
func (r *Register) ForceValue(v uint64) {
	r.saved = vsrtl.NewBitVector(r.width, v).Uint()
}
