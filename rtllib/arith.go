package rtllib

import "github.com/db47h/vsrtl"

// Adder is a width-bit unsigned adder with a dedicated carry-out bit,
// grounded on op_add's two-input addition (the original only special-
// cases signed/unsigned subtraction explicitly in op_sub.h, but follows
// the same DYNP_IN/DYNP_OUT shape for addition).
type Adder struct {
	*vsrtl.Component

	A, B *vsrtl.Port
	Sum  *vsrtl.Port
	Cout *vsrtl.Port

	width uint
}

// NewAdder builds a width-bit adder with A, B inputs and Sum, Cout
// outputs.
func NewAdder(parent *vsrtl.Component, name string, width uint) *Adder {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "adder"))
	ad := &Adder{Component: c, width: width}
	ad.A = c.CreateInputPort("a", width)
	ad.B = c.CreateInputPort("b", width)
	ad.Sum = c.CreateOutputPort("sum", width, func() uint64 { return ad.A.Value() + ad.B.Value() })
	ad.Cout = c.CreateOutputPort("cout", 1, func() uint64 {
		full := ad.A.Value() + ad.B.Value()
		if full>>width != 0 {
			return 1
		}
		return 0
	})
	return ad
}

// Subtractor is a width-bit two's-complement subtractor (op_sub.h,
// OpType::Unsigned branch): Out = A - B, masked to width.
type Subtractor struct {
	*vsrtl.Component

	A, B *vsrtl.Port
	Out  *vsrtl.Port
}

// NewSubtractor builds a width-bit subtractor.
func NewSubtractor(parent *vsrtl.Component, name string, width uint) *Subtractor {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "subtractor"))
	s := &Subtractor{Component: c}
	s.A = c.CreateInputPort("a", width)
	s.B = c.CreateInputPort("b", width)
	s.Out = c.CreateOutputPort("out", width, func() uint64 { return s.A.Value() - s.B.Value() })
	return s
}

// ShiftLeft is a fixed-amount logical left shift (op_shl.h): a w-bit
// input shifted left by n bits widens to w+n bits, so no information is
// lost off the top.
type ShiftLeft struct {
	*vsrtl.Component

	In  *vsrtl.Port
	Out *vsrtl.Port
}

// NewShiftLeft builds a component shifting its width-bit In left by n
// bits into a (width+n)-bit Out.
func NewShiftLeft(parent *vsrtl.Component, name string, width, n uint) *ShiftLeft {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "shl"))
	s := &ShiftLeft{Component: c}
	s.In = c.CreateInputPort("in", width)
	s.Out = c.CreateOutputPort("out", width+n, func() uint64 { return s.In.Value() << n })
	return s
}

// ShiftRight is a fixed-amount logical right shift (op_shr.h, the
// Unsigned branch): Out narrows to max(width-n, 1) bits, since those are
// the only bits that can still carry information.
type ShiftRight struct {
	*vsrtl.Component

	In  *vsrtl.Port
	Out *vsrtl.Port
}

// NewShiftRight builds a component shifting its width-bit In right by n
// bits.
func NewShiftRight(parent *vsrtl.Component, name string, width, n uint) *ShiftRight {
	outWidth := width
	if n < width {
		outWidth = width - n
	} else {
		outWidth = 1
	}
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "shr"))
	s := &ShiftRight{Component: c}
	s.In = c.CreateInputPort("in", width)
	s.Out = c.CreateOutputPort("out", outWidth, func() uint64 { return s.In.Value() >> n })
	return s
}

// BitExtract selects the [lo,hi] inclusive bit range of a w-bit input
// (op_bitextr.h).
type BitExtract struct {
	*vsrtl.Component

	In  *vsrtl.Port
	Out *vsrtl.Port
}

// NewBitExtract builds a component extracting bits [lo,hi] (inclusive) of
// a width-bit In. hi must be < width and >= lo.
func NewBitExtract(parent *vsrtl.Component, name string, width, lo, hi uint) *BitExtract {
	if hi >= width {
		panic("vsrtl/rtllib: BitExtract hi out of range")
	}
	if hi < lo {
		panic("vsrtl/rtllib: BitExtract hi < lo")
	}
	outWidth := hi - lo + 1
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "bitextract"))
	b := &BitExtract{Component: c}
	b.In = c.CreateInputPort("in", width)
	b.Out = c.CreateOutputPort("out", outWidth, func() uint64 {
		return (b.In.Value() >> lo) & ((uint64(1) << outWidth) - 1)
	})
	return b
}

// ZeroExtend widens a width-bit In to a wider Out by zero-filling the
// high bits (op_pad.h, Unsigned branch). If n <= width it is a pass-
// through at the original width.
type ZeroExtend struct {
	*vsrtl.Component

	In  *vsrtl.Port
	Out *vsrtl.Port
}

// NewZeroExtend builds a zero-extending pad from width bits to n bits.
func NewZeroExtend(parent *vsrtl.Component, name string, width, n uint) *ZeroExtend {
	outWidth := width
	if n > width {
		outWidth = n
	}
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "zext"))
	z := &ZeroExtend{Component: c}
	z.In = c.CreateInputPort("in", width)
	z.Out = c.CreateOutputPort("out", outWidth, func() uint64 { return z.In.Value() })
	return z
}

// SignExtend widens a width-bit In to a wider Out, replicating In's sign
// bit into the new high bits (op_pad.h, Signed branch / op_cvt.h).
type SignExtend struct {
	*vsrtl.Component

	In  *vsrtl.Port
	Out *vsrtl.Port

	width uint
}

// NewSignExtend builds a sign-extending pad from width bits to n bits.
func NewSignExtend(parent *vsrtl.Component, name string, width, n uint) *SignExtend {
	outWidth := width
	if n > width {
		outWidth = n
	}
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "sext"))
	s := &SignExtend{Component: c, width: width}
	s.In = c.CreateInputPort("in", width)
	s.Out = c.CreateOutputPort("out", outWidth, func() uint64 {
		return uint64(vsrtl.SignExtend(s.In.Value(), s.width))
	})
	return s
}

// Equal is a width-bit equality comparator, the logic-gate-shaped
// component that feeds a branch-taken control signal in a typical
// single-cycle datapath.
type Equal struct {
	*vsrtl.Component

	A, B *vsrtl.Port
	Out  *vsrtl.Port
}

// NewEqual builds a width-bit equality comparator with a 1-bit Out.
func NewEqual(parent *vsrtl.Component, name string, width uint) *Equal {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "eq"))
	e := &Equal{Component: c}
	e.A = c.CreateInputPort("a", width)
	e.B = c.CreateInputPort("b", width)
	e.Out = c.CreateOutputPort("out", 1, func() uint64 {
		if e.A.Value() == e.B.Value() {
			return 1
		}
		return 0
	})
	return e
}
