package rtllib

import "github.com/db47h/vsrtl"

// Constant is an input-less component whose single output always holds
// the value it was constructed with; it propagates exactly once, at
// Design.Initialize.
type Constant struct {
	*vsrtl.Component

	Out *vsrtl.Port
}

// NewConstant builds a width-bit constant holding value (masked to
// width).
func NewConstant(parent *vsrtl.Component, name string, width uint, value uint64) *Constant {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "constant"))
	v := vsrtl.NewBitVector(width, value).Uint()
	k := &Constant{Component: c}
	k.Out = c.CreateOutputPort("out", width, func() uint64 { return v })
	return k
}

// Input is an input-less component standing in for a value supplied by
// whatever embeds the simulation (a CPU's external reset line, a test
// harness driving stimulus). Like Constant it is only ever (re-)evaluated
// at Design.Initialize/Design.Reset, never by the per-tick flood; Set
// changes the value a subsequent Reset will pick up.
type Input struct {
	*vsrtl.Component

	Out *vsrtl.Port

	width uint
	value uint64
}

// NewInput builds a width-bit Input initialized to 0.
func NewInput(parent *vsrtl.Component, name string, width uint) *Input {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "input"))
	in := &Input{Component: c, width: width}
	in.Out = c.CreateOutputPort("out", width, func() uint64 { return in.value })
	return in
}

// Set changes the value Out will report the next time it is propagated.
func (in *Input) Set(v uint64) { in.value = vsrtl.NewBitVector(in.width, v).Uint() }
