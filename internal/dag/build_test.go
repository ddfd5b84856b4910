package dag

import (
	"context"
	"testing"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/graph"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/parser"
	"github.com/specialistvlad/mathgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func parseLines(t *testing.T, lines ...string) []parser.Declaration {
	t.Helper()
	decls, err := parser.New(node.Width64, registry.Default()).ParseLines(lines)
	require.NoError(t, err)
	return decls
}

func TestBuild_OneNodePerDeclaration(t *testing.T) {
	decls := parseLines(t,
		"root: a + b",
		"a: 2",
		"b: c * d",
		"c: 3",
		"d: 4",
	)

	g, err := Build(testContext(), decls, Options{})
	require.NoError(t, err)
	assert.Equal(t, len(decls), g.Len())

	for _, n := range g.Nodes() {
		slots, err := g.OperandSlots(n.ID)
		require.NoError(t, err)
		if n.IsLiteral() {
			assert.Empty(t, slots, "literal %q must have no operands", n.ID)
			continue
		}
		require.Len(t, slots, 2, "operator %q", n.ID)
		assert.Len(t, slots[0], 1)
		assert.Len(t, slots[1], 1)
	}

	root, ok := g.Node("root")
	require.True(t, ok)
	assert.Equal(t, [2]string{"a", "b"}, root.Operands)
	b, _ := g.Node("b")
	assert.Equal(t, 1, b.Position)
	assert.Equal(t, 3, b.Line)
}

func TestBuild_OrderIndependent(t *testing.T) {
	forward := parseLines(t, "root: a + b", "a: 2", "b: c * d", "c: 3", "d: 4")
	backward := parseLines(t, "d: 4", "c: 3", "b: c * d", "a: 2", "root: a + b")

	for name, decls := range map[string][]parser.Declaration{"forward": forward, "backward": backward} {
		t.Run(name, func(t *testing.T) {
			g, err := Build(testContext(), decls, Options{})
			require.NoError(t, err)

			slots, err := g.OperandSlots("b")
			require.NoError(t, err)
			assert.Equal(t, map[int][]string{0: {"c"}, 1: {"d"}}, slots)
		})
	}
}

func TestBuild_SameOperandTwice(t *testing.T) {
	g, err := Build(testContext(), parseLines(t, "sq: x * x", "x: 5"), Options{})
	require.NoError(t, err)

	slots, err := g.OperandSlots("sq")
	require.NoError(t, err)
	assert.Equal(t, map[int][]string{0: {"x"}, 1: {"x"}}, slots)
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		lines   []string
		err     error
		message string
	}{
		{
			name:    "duplicate identifier",
			lines:   []string{"a: 1", "b: 2", "a: 3"},
			err:     ErrDuplicateIdentifier,
			message: `"a" on line 3, first declared on line 1`,
		},
		{
			name:    "unknown operand",
			lines:   []string{"root: a + ghost", "a: 1"},
			err:     ErrUnknownIdentifier,
			message: `"ghost" referenced by "root" on line 1`,
		},
		{
			name:  "two node cycle",
			lines: []string{"a: b + c", "b: a - c", "c: 1"},
			err:   ErrCycle,
		},
		{
			name:  "self reference",
			lines: []string{"a: a + b", "b: 1"},
			err:   ErrCycle,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Build(testContext(), parseLines(t, tc.lines...), Options{})
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
			if tc.message != "" {
				assert.ErrorContains(t, err, tc.message)
			}
		})
	}
}

func TestBuild_PlaceholderCreate(t *testing.T) {
	decls := parseLines(t, "root: a + ghost", "a: 1")

	g, err := Build(testContext(), decls, Options{Placeholders: PlaceholderCreate})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	ghost, ok := g.Node("ghost")
	require.True(t, ok, "placeholder must carry the operand's own identifier")
	assert.Equal(t, node.KindUnresolved, ghost.Kind)
	assert.Equal(t, 1, ghost.Position)
	assert.Zero(t, ghost.Line)

	root, _ := g.Node("root")
	assert.Equal(t, node.KindOperator, root.Kind)
}

func TestBuild_Overrides(t *testing.T) {
	decls := parseLines(t, "root: a + b", "a: 2", "b: c * d", "c: 3", "d: 4")

	t.Run("literal override", func(t *testing.T) {
		g, err := Build(testContext(), decls, Options{Overrides: map[string]node.Value{"a": 10}})
		require.NoError(t, err)
		a, _ := g.Node("a")
		assert.Equal(t, node.Value(10), a.Value)
	})

	t.Run("operator override drops its edges", func(t *testing.T) {
		g, err := Build(testContext(), decls, Options{Overrides: map[string]node.Value{"b": 100}})
		require.NoError(t, err)
		b, _ := g.Node("b")
		assert.True(t, b.IsLiteral())

		slots, err := g.OperandSlots("b")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("override above width maximum", func(t *testing.T) {
		_, err := Build(testContext(), decls, Options{Overrides: map[string]node.Value{"a": 1000}, Width: node.Width8})
		require.Error(t, err)
		assert.ErrorIs(t, err, parser.ErrLiteralOverflow)
		assert.ErrorContains(t, err, `override "a"`)
	})

	t.Run("override at width maximum", func(t *testing.T) {
		g, err := Build(testContext(), decls, Options{Overrides: map[string]node.Value{"a": 255}, Width: node.Width8})
		require.NoError(t, err)
		a, _ := g.Node("a")
		assert.Equal(t, node.Value(255), a.Value)
	})

	t.Run("unknown override", func(t *testing.T) {
		_, err := Build(testContext(), decls, Options{Overrides: map[string]node.Value{"zzz": 1}})
		assert.ErrorIs(t, err, ErrUnknownIdentifier)
	})
}

func TestValidate_MalformedOperator(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(node.NewOperator("a", node.OpSub, "b", "c")))
	require.NoError(t, g.AddNode(node.NewLiteral("b", 1)))
	require.NoError(t, g.AddNode(node.NewLiteral("c", 1)))
	require.NoError(t, g.AddOperand("a", "b", 0))

	err := Validate(g)
	assert.ErrorIs(t, err, ErrMalformedOperator)

	require.NoError(t, g.AddOperand("a", "c", 1))
	assert.NoError(t, Validate(g))
}

func TestParsePlaceholderPolicy(t *testing.T) {
	p, err := ParsePlaceholderPolicy("create")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderCreate, p)

	p, err = ParsePlaceholderPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderReject, p)

	_, err = ParsePlaceholderPolicy("ignore")
	assert.Error(t, err)
}
