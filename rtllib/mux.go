package rtllib

import (
	"strconv"

	"github.com/db47h/vsrtl"
)

// Multiplexer is an N-input, W-bit wide selector: Select picks which of
// the N Ins ports is forwarded to Out. Select's width is ceil(log2(N)),
// the same sizing the original Multiplexer<N,W> template uses.
type Multiplexer struct {
	*vsrtl.Component

	Ins    []*vsrtl.Port
	Select *vsrtl.Port
	Out    *vsrtl.Port
}

// NewMultiplexer builds an n-input, width-bit multiplexer.
func NewMultiplexer(parent *vsrtl.Component, name string, n int, width uint) *Multiplexer {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "mux"))

	mx := &Multiplexer{Component: c}
	mx.Ins = make([]*vsrtl.Port, n)
	for i := range mx.Ins {
		mx.Ins[i] = c.CreateInputPort("in["+strconv.Itoa(i)+"]", width)
	}
	mx.Select = c.CreateInputPort("select", vsrtl.CeilLog2(uint(n)))
	c.SetSpecialPort("select", mx.Select)
	mx.Out = c.CreateOutputPort("out", width, func() uint64 {
		return mx.Ins[mx.Select.Value()].Value()
	})
	return mx
}

// Get returns the idx'th input port, raising ErrIndexOutOfRange if idx is
// out of bounds.
func (mx *Multiplexer) Get(idx int) (*vsrtl.Port, error) {
	if idx < 0 || idx >= len(mx.Ins) {
		return nil, vsrtl.ErrIndexOutOfRange
	}
	return mx.Ins[idx], nil
}

// UnconnectedInputs returns every In port that has not yet been wired to
// a source, for the external visual layer to flag floating mux inputs
// (the original's Multiplexer::others()).
func (mx *Multiplexer) UnconnectedInputs() []*vsrtl.Port {
	var out []*vsrtl.Port
	for _, p := range mx.Ins {
		if !p.IsConnected() {
			out = append(out, p)
		}
	}
	return out
}

// EnumMultiplexer is a Multiplexer whose inputs are each bound to one of
// the values in values. Get looks a port up by its bound value; accessing
// a value that was never bound raises ErrIndexOutOfRange rather than
// silently returning a zeroed port. Select is the embedded Multiplexer's
// select, of width ceil(log2(len(values))): it picks an input by its
// position in values, not by the bound value, and does not report
// ErrIndexOutOfRange for an unbound value.
type EnumMultiplexer struct {
	*Multiplexer

	byValue map[uint64]*vsrtl.Port
}

// NewEnumMultiplexer builds a multiplexer with one input per entry in
// values; values need not be contiguous or zero-based, mirroring the
// original EnumMultiplexer<E_t,W>'s mapping of an arbitrary enum's
// members onto ports.
func NewEnumMultiplexer(parent *vsrtl.Component, name string, values []uint64, width uint) *EnumMultiplexer {
	mx := NewMultiplexer(parent, name, len(values), width)
	em := &EnumMultiplexer{Multiplexer: mx, byValue: make(map[uint64]*vsrtl.Port, len(values))}
	for i, v := range values {
		em.byValue[v] = mx.Ins[i]
	}
	return em
}

// Get returns the input port bound to the given enum value, or
// ErrIndexOutOfRange if value was never bound to a port.
func (em *EnumMultiplexer) Get(value uint64) (*vsrtl.Port, error) {
	p, ok := em.byValue[value]
	if !ok {
		return nil, vsrtl.ErrIndexOutOfRange
	}
	return p, nil
}
