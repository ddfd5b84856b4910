package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookup(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"*", "+", "-", "/"}, r.Symbols())

	o, ok := r.Lookup("-")
	require.True(t, ok)
	assert.Equal(t, node.OpSub, o.Op)

	_, ok = r.Lookup("%")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	r := Default()

	testCases := []struct {
		name     string
		op       node.Op
		left     node.Value
		right    node.Value
		width    node.Width
		expected node.Value
	}{
		{name: "add", op: node.OpAdd, left: 2, right: 12, width: node.Width64, expected: 14},
		{name: "sub keeps operand order", op: node.OpSub, left: 10, right: 3, width: node.Width64, expected: 7},
		{name: "mul", op: node.OpMul, left: 3, right: 4, width: node.Width64, expected: 12},
		{name: "div truncates", op: node.OpDiv, left: 7, right: 2, width: node.Width64, expected: 3},
		{name: "add wraps at 8 bits", op: node.OpAdd, left: 200, right: 100, width: node.Width8, expected: 44},
		{name: "sub wraps at 16 bits", op: node.OpSub, left: 3, right: 10, width: node.Width16, expected: 65529},
		{name: "mul wraps at 16 bits", op: node.OpMul, left: 300, right: 300, width: node.Width16, expected: 90000 % 65536},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Apply(tc.op, tc.left, tc.right, tc.width)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestApply_DivisionByZero(t *testing.T) {
	_, err := Default().Apply(node.OpDiv, 5, 0, node.Width64)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := Default()
	assert.Panics(t, func() {
		r.Register(&Operator{Op: node.OpAdd, Symbol: "+", Fn: add})
	})
}

func TestValidateRegistry(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())

	require.NoError(t, Default().ValidateRegistry(ctx))

	partial := New()
	partial.Register(&Operator{Op: node.OpAdd, Symbol: "+", Fn: add})
	err := partial.ValidateRegistry(ctx)
	assert.ErrorContains(t, err, "sub, mul, div")
}
