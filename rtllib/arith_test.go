package rtllib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/vsrtl"
	"github.com/db47h/vsrtl/rtllib"
)

func wireConst(t *testing.T, dst *vsrtl.Port, parent *vsrtl.Component, name string, value uint64) {
	t.Helper()
	c := rtllib.NewConstant(parent, name, dst.Width(), value)
	require.NoError(t, dst.Connect(c.Out))
}

func TestAdderSumAndCarryOut(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	ad := rtllib.NewAdder(top, "add", 8)
	wireConst(t, ad.A, top, "a", 0xFF)
	wireConst(t, ad.B, top, "b", 0x02)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0x01, ad.Sum.Value(), "sum must wrap at width")
	assert.EqualValues(t, 1, ad.Cout.Value())
}

func TestSubtractorWrapsOnUnderflow(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	s := rtllib.NewSubtractor(top, "sub", 8)
	wireConst(t, s.A, top, "a", 0x01)
	wireConst(t, s.B, top, "b", 0x02)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0xFF, s.Out.Value())
}

func TestShiftLeftWidensOutput(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	sl := rtllib.NewShiftLeft(top, "shl", 4, 2)
	wireConst(t, sl.In, top, "in", 0xF)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 6, sl.Out.Width())
	assert.EqualValues(t, 0x3C, sl.Out.Value())
}

func TestShiftRightNarrowsOutput(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	sr := rtllib.NewShiftRight(top, "shr", 8, 3)
	wireConst(t, sr.In, top, "in", 0xF0)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 5, sr.Out.Width())
	assert.EqualValues(t, 0x1E, sr.Out.Value())
}

func TestBitExtractSelectsInclusiveRange(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	be := rtllib.NewBitExtract(top, "be", 8, 2, 5)
	wireConst(t, be.In, top, "in", 0b1011_0100)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 4, be.Out.Width())
	assert.EqualValues(t, 0b1101, be.Out.Value())
}

func TestZeroExtendFillsHighBitsWithZero(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	z := rtllib.NewZeroExtend(top, "z", 4, 8)
	wireConst(t, z.In, top, "in", 0xF)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0x0F, z.Out.Value())
}

func TestSignExtendReplicatesSignBit(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	s := rtllib.NewSignExtend(top, "s", 4, 8)
	wireConst(t, s.In, top, "in", 0xF) // -1 in 4 bits

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0xFF, s.Out.Value())
}

func TestEqualComparator(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	eq := rtllib.NewEqual(top, "eq", 8)
	wireConst(t, eq.A, top, "a", 7)
	wireConst(t, eq.B, top, "b", 7)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 1, eq.Out.Value())
}

func TestEqualComparatorUnequal(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	eq := rtllib.NewEqual(top, "eq", 8)
	wireConst(t, eq.A, top, "a", 7)
	wireConst(t, eq.B, top, "b", 8)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0, eq.Out.Value())
}
