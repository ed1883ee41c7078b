package vsrtl_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/db47h/vsrtl"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

// testRegister is the minimal Clocked primitive these tests build
// circuits out of, so the core package's tests don't need to import
// rtllib.
type testRegister struct {
	vsrtl.ClockedComponent

	in, out *vsrtl.Port
	saved   uint64
	history []uint64
}

func newTestRegister(parent *vsrtl.Component, name string, width uint) *testRegister {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "register"))
	c.SetRegister()
	r := &testRegister{ClockedComponent: vsrtl.ClockedComponent{Component: c}}
	r.in = c.CreateInputPort("in", width)
	r.out = c.CreateOutputPort("out", width, func() uint64 { return r.saved })
	c.SetClocked(r)
	return r
}

func (r *testRegister) Save() {
	r.history = append([]uint64{r.saved}, r.history...)
	r.saved = r.in.Value()
}

func (r *testRegister) Reverse() {
	if len(r.history) == 0 {
		return
	}
	r.saved = r.history[0]
	r.history = r.history[1:]
}

func (r *testRegister) ResetState() {
	r.saved = 0
	r.history = nil
}

func (r *testRegister) ReverseDepth() int { return len(r.history) }

func newConstant(parent *vsrtl.Component, name string, width uint, value uint64) *vsrtl.Port {
	c := parent.AddSubComponent(vsrtl.NewComponent(name, "constant"))
	v := vsrtl.NewBitVector(width, value).Uint()
	return c.CreateOutputPort("out", width, func() uint64 { return v })
}

// registerLoop builds a single register whose input is tied directly to
// its own output, the minimal feedback loop that is legal because it
// passes through a clocked element.
func registerLoop(t *testing.T) (*vsrtl.Design, *testRegister) {
	t.Helper()
	top := vsrtl.NewComponent("top", "top")
	reg := newTestRegister(top, "reg", 8)
	if err := reg.in.Connect(reg.out); err != nil {
		t.Fatal(err)
	}
	d := vsrtl.NewDesign(top)
	if err := d.Verify(); err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	return d, reg
}

func TestRegisterLoopPropagatesAfterInitialize(t *testing.T) {
	_, reg := registerLoop(t)
	if !reg.out.Propagated() {
		t.Fatal("want out propagated after Initialize")
	}
	if reg.out.Value() != 0 {
		t.Fatalf("got %d, want 0", reg.out.Value())
	}
}

func TestReverseRoundTrip(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := newTestRegister(top, "reg", 8)
	src := newConstant(top, "five", 8, 5)
	if err := reg.in.Connect(src); err != nil {
		t.Fatal(err)
	}
	d := vsrtl.NewDesign(top)
	if err := d.Verify(); err != nil {
		t.Fatal(err)
	}
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := d.Clock(); err != nil {
			t.Fatal(err)
		}
	}
	if reg.out.Value() != 5 {
		t.Fatalf("got %d, want 5", reg.out.Value())
	}
	if d.TickCount() != 3 {
		t.Fatalf("got tick_count %d, want 3", d.TickCount())
	}

	for i := 0; i < 3; i++ {
		if !d.CanReverse() {
			t.Fatal("want CanReverse true")
		}
		if err := d.Reverse(); err != nil {
			t.Fatal(err)
		}
	}
	if d.TickCount() != 0 {
		t.Fatalf("got tick_count %d, want 0", d.TickCount())
	}
	if reg.out.Value() != 0 {
		t.Fatalf("got %d, want 0 after full reverse", reg.out.Value())
	}
}

func TestReverseIsNoOpWhenStackEmpty(t *testing.T) {
	d, _ := registerLoop(t)
	if d.CanReverse() {
		t.Fatal("want CanReverse false with no ticks yet")
	}
	if err := d.Reverse(); err != nil {
		t.Fatalf("Reverse on an empty stack must not error: %v", err)
	}
}

func TestResetIdempotence(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := newTestRegister(top, "reg", 8)
	src := newConstant(top, "five", 8, 5)
	if err := reg.in.Connect(src); err != nil {
		t.Fatal(err)
	}
	d := vsrtl.NewDesign(top)
	if err := d.Verify(); err != nil {
		t.Fatal(err)
	}
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := d.Clock(); err != nil {
		t.Fatal(err)
	}

	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	if d.TickCount() != 0 {
		t.Fatalf("got tick_count %d, want 0", d.TickCount())
	}
	if reg.out.Value() != 0 {
		t.Fatalf("got %d, want 0", reg.out.Value())
	}
	if d.CanReverse() {
		t.Fatal("want CanReverse false after Reset")
	}
}

func TestUnconnectedInputFailsVerify(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	top.CreateInputPort("dangling", 8)
	top.CreateOutputPort("out", 8, func() uint64 { return 0 })
	d := vsrtl.NewDesign(top)
	err := d.Verify()
	if !errors.Is(err, vsrtl.ErrUnconnectedInput) {
		t.Fatalf("got %v, want ErrUnconnectedInput", err)
	}
}

func TestWidthMismatchFailsConnect(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	in := top.CreateInputPort("in", 8)
	src := newConstant(top, "c", 4, 1)
	err := in.Connect(src)
	if !errors.Is(err, vsrtl.ErrWidthMismatch) {
		t.Fatalf("got %v, want ErrWidthMismatch", err)
	}
}

// TestCombinationalCycleFailsVerify wires two components' outputs into each other's
// inputs with nothing clocked breaking the loop.
func TestCombinationalCycleFailsVerify(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	a := top.AddSubComponent(vsrtl.NewComponent("a", "buf"))
	b := top.AddSubComponent(vsrtl.NewComponent("b", "buf"))
	aIn := a.CreateInputPort("in", 1)
	bIn := b.CreateInputPort("in", 1)
	aOut := a.CreateOutputPort("out", 1, func() uint64 { return bIn.Value() })
	bOut := b.CreateOutputPort("out", 1, func() uint64 { return aIn.Value() })
	if err := aIn.Connect(bOut); err != nil {
		t.Fatal(err)
	}
	if err := bIn.Connect(aOut); err != nil {
		t.Fatal(err)
	}

	d := vsrtl.NewDesign(top)
	err := d.Verify()
	if !errors.Is(err, vsrtl.ErrCombinationalCycle) {
		t.Fatalf("got %v, want ErrCombinationalCycle", err)
	}
}

func TestValueOverflowIsDiagnosedNotFatal(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	top.CreateOutputPort("out", 4, func() uint64 { return 0xFF }) // overflows 4 bits
	d := vsrtl.NewDesign(top)
	if err := d.Verify(); err != nil {
		t.Fatal(err)
	}
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	out := top.OutputPorts()[0]
	if out.Value() != 0xF {
		t.Fatalf("got %#x, want masked %#x", out.Value(), 0xF)
	}
	if d.Diagnostics.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", d.Diagnostics.Len())
	}
}

func TestOutputComponentsAndInputComponentsAreSymmetric(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	a := top.AddSubComponent(vsrtl.NewComponent("a", "buf"))
	b := top.AddSubComponent(vsrtl.NewComponent("b", "buf"))
	aOut := a.CreateOutputPort("out", 1, func() uint64 { return 0 })
	bIn := b.CreateInputPort("in", 1)
	if err := bIn.Connect(aOut); err != nil {
		t.Fatal(err)
	}

	foundB := false
	for _, oc := range a.OutputComponents() {
		if oc == b {
			foundB = true
		}
	}
	foundA := false
	for _, ic := range b.InputComponents() {
		if ic == a {
			foundA = true
		}
	}
	if !foundB || !foundA {
		t.Fatal("output_components/input_components must agree on the edge between a and b")
	}
}
