package rtllib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/vsrtl"
	"github.com/db47h/vsrtl/rtllib"
)

func wireGateInputs(t *testing.T, parent *vsrtl.Component, ins []*vsrtl.Port, values ...uint64) {
	t.Helper()
	require.Len(t, values, len(ins))
	for i, v := range values {
		c := rtllib.NewConstant(parent, "c"+string(rune('0'+i)), ins[i].Width(), v)
		require.NoError(t, ins[i].Connect(c.Out))
	}
}

func TestAndGateNWay(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	g := rtllib.NewAnd(top, "and", 3, 4)
	ins := g.InputPorts()
	wireGateInputs(t, top, ins, 0b1110, 0b0111, 0b1111)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0b0110, g.OutputPorts()[0].Value())
}

func TestOrGateNWay(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	g := rtllib.NewOr(top, "or", 3, 4)
	ins := g.InputPorts()
	wireGateInputs(t, top, ins, 0b1000, 0b0100, 0b0010)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0b1110, g.OutputPorts()[0].Value())
}

func TestXorGateNWay(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	g := rtllib.NewXor(top, "xor", 2, 4)
	ins := g.InputPorts()
	wireGateInputs(t, top, ins, 0b1100, 0b1010)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0b0110, g.OutputPorts()[0].Value())
}

func TestNotGate(t *testing.T) {
	top := vsrtl.NewComponent("top", "top")
	g := rtllib.NewNot(top, "not", 4)
	wireGateInputs(t, top, g.InputPorts(), 0b1010)

	_ = buildDesign(t, top)
	assert.EqualValues(t, 0b0101, g.OutputPorts()[0].Value())
}
