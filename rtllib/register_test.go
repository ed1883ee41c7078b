package rtllib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/vsrtl"
	"github.com/db47h/vsrtl/rtllib"
)

// TestRegisterLoopCountsAndReverses drives a register fed by an adder
// summing its own output and a constant 1, then reverses several ticks.
func TestRegisterLoopCountsAndReverses(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := rtllib.NewRegister(top, "reg", 8)
	one := rtllib.NewConstant(top, "one", 8, 1)
	en := rtllib.NewConstant(top, "en", 1, 1)
	add := rtllib.NewAdder(top, "add", 8)

	require.NoError(t, add.A.Connect(reg.DataOut))
	require.NoError(t, add.B.Connect(one.Out))
	require.NoError(t, reg.DataIn.Connect(add.Sum))
	require.NoError(t, reg.Enable.Connect(en.Out))

	d := buildDesign(t, top)
	assert.EqualValues(t, 0, reg.DataOut.Value())

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Clock())
	}
	assert.EqualValues(t, 5, reg.DataOut.Value())
	assert.EqualValues(t, 5, d.TickCount())

	for i := 0; i < 3; i++ {
		require.True(t, d.CanReverse())
		require.NoError(t, d.Reverse())
	}
	assert.EqualValues(t, 2, reg.DataOut.Value())
	assert.EqualValues(t, 2, d.TickCount())
}

// TestRegisterHoldsWhenDisabled checks that a register whose enable is 0
// holds its value across a clock tick.
func TestRegisterHoldsWhenDisabled(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := rtllib.NewRegister(top, "reg", 8)
	src := rtllib.NewConstant(top, "five", 8, 5)
	off := rtllib.NewConstant(top, "off", 1, 0)
	require.NoError(t, reg.DataIn.Connect(src.Out))
	require.NoError(t, reg.Enable.Connect(off.Out))

	d := buildDesign(t, top)
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Clock())
	}
	assert.EqualValues(t, 0, reg.DataOut.Value(), "disabled register must hold its initial value")
}

// TestRegisterTruncateReverseStack covers the reverse-stack-capacity
// shrink path: truncation drops from the oldest end, eagerly.
func TestRegisterTruncateReverseStack(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := rtllib.NewRegister(top, "reg", 8)
	one := rtllib.NewConstant(top, "one", 8, 1)
	en := rtllib.NewConstant(top, "en", 1, 1)
	add := rtllib.NewAdder(top, "add", 8)
	require.NoError(t, add.A.Connect(reg.DataOut))
	require.NoError(t, add.B.Connect(one.Out))
	require.NoError(t, reg.DataIn.Connect(add.Sum))
	require.NoError(t, reg.Enable.Connect(en.Out))

	d := buildDesign(t, top, vsrtl.WithReverseCapacity(10))
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Clock())
	}
	assert.Equal(t, 10, reg.ReverseDepth())

	d.SetReverseCapacity(3)
	assert.Equal(t, 3, reg.ReverseDepth())
}

// TestRegisterForceValueBypassesReverseStack: a forced value does not
// push a reverse entry, so undoing the prior tick restores the value
// from before the force, not the forced value itself.
func TestRegisterForceValueBypassesReverseStack(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	reg := rtllib.NewRegister(top, "reg", 8)
	src := rtllib.NewConstant(top, "five", 8, 5)
	en := rtllib.NewConstant(top, "en", 1, 1)
	require.NoError(t, reg.DataIn.Connect(src.Out))
	require.NoError(t, reg.Enable.Connect(en.Out))

	d := buildDesign(t, top)
	require.NoError(t, d.Clock())
	assert.EqualValues(t, 5, reg.DataOut.Value())

	reg.ForceValue(42)
	assert.Equal(t, 1, reg.ReverseDepth(), "ForceValue must not push a reverse entry")

	require.NoError(t, d.Reverse())
	assert.EqualValues(t, 0, reg.DataOut.Value())
}
