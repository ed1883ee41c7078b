package rtllib

import (
	"strconv"

	"github.com/db47h/vsrtl"
)

// newNaryGate builds a width-bit component with n named "in[i]" input
// ports folded left-to-right through reduce into a single "out" port,
// the shape every gate in the original's vsrtl_logicgate.h shares
// (And/Or/Xor each just change the fold function).
func newNaryGate(parent *vsrtl.Component, name, typeID string, n int, width uint, reduce func(acc, v uint64) uint64) *vsrtl.Component {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, typeID))
	ins := make([]*vsrtl.Port, n)
	for i := range ins {
		ins[i] = c.CreateInputPort("in["+strconv.Itoa(i)+"]", width)
	}
	c.CreateOutputPort("out", width, func() uint64 {
		v := ins[0].Value()
		for _, ip := range ins[1:] {
			v = reduce(v, ip.Value())
		}
		return v
	})
	return c
}

// NewAnd builds an n-input, width-bit bitwise AND gate.
func NewAnd(parent *vsrtl.Component, name string, n int, width uint) *vsrtl.Component {
	return newNaryGate(parent, name, "and", n, width, func(a, b uint64) uint64 { return a & b })
}

// NewOr builds an n-input, width-bit bitwise OR gate.
func NewOr(parent *vsrtl.Component, name string, n int, width uint) *vsrtl.Component {
	return newNaryGate(parent, name, "or", n, width, func(a, b uint64) uint64 { return a | b })
}

// NewXor builds an n-input, width-bit bitwise XOR gate.
func NewXor(parent *vsrtl.Component, name string, n int, width uint) *vsrtl.Component {
	return newNaryGate(parent, name, "xor", n, width, func(a, b uint64) uint64 { return a ^ b })
}

// NewNot builds a width-bit bitwise NOT gate: out = ~in, masked to width
// by the output port.
func NewNot(parent *vsrtl.Component, name string, width uint) *vsrtl.Component {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "not"))
	in := c.CreateInputPort("in", width)
	c.CreateOutputPort("out", width, func() uint64 { return ^in.Value() })
	return c
}
