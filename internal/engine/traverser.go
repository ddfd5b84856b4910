package engine

import (
	"context"
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/graph"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/registry"
)

// Evaluator resolves a root node by post-order traversal.
type Evaluator struct {
	ops   *registry.Registry
	width node.Width
}

// New creates an Evaluator applying operators from ops at the given width.
func New(ops *registry.Registry, width node.Width) *Evaluator {
	return &Evaluator{ops: ops, width: width}
}

// frame is one pending visit. expanded is set once the operands were pushed.
type frame struct {
	n        *node.Node
	expanded bool
}

// Evaluate resolves root and every operator below it, folding them into
// literals in place. Calling it again on the same graph returns the same value.
func (e *Evaluator) Evaluate(ctx context.Context, g *graph.Graph, root string) (node.Value, error) {
	logger := ctxlog.FromContext(ctx)

	rootNode, ok := g.Node(root)
	if !ok {
		return 0, fmt.Errorf("%w `%s`", ErrUnknownRoot, root)
	}
	logger.Debug("Rooted evaluation started.", "root", root)

	frames := []*frame{{n: rootNode}}
	var values []node.Value

	for len(frames) > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		top := frames[len(frames)-1]
		n := top.n

		switch n.Kind {
		case node.KindLiteral:
			frames = frames[:len(frames)-1]
			values = append(values, n.Value)
			logger.Debug("Visited literal.", "id", n.ID, "value", n.Value)

		case node.KindOperator:
			if !top.expanded {
				top.expanded = true
				left, right, err := g.Operands(n)
				if err != nil {
					return 0, err
				}
				// Right first so the left operand is visited, and pushed, first.
				frames = append(frames, &frame{n: right}, &frame{n: left})
				continue
			}

			frames = frames[:len(frames)-1]
			if len(values) < 2 {
				return 0, fmt.Errorf("internal error: operator `%s` has %d operand value(s) on the stack", n.ID, len(values))
			}
			l, r := values[len(values)-2], values[len(values)-1]
			values = values[:len(values)-2]

			v, err := e.ops.Apply(n.Op, l, r, e.width)
			if err != nil {
				return 0, &EvalError{ID: n.ID, Op: n.Op, Err: err}
			}
			if err := n.Resolve(v); err != nil {
				return 0, err
			}
			values = append(values, v)
			logger.Debug("Folded operator.", "id", n.ID, "left", l, "op", n.Op.Symbol(), "right", r, "value", v)

		default:
			return 0, &UnresolvedError{ID: root, Blocker: n.ID}
		}
	}

	if len(values) != 1 {
		return 0, fmt.Errorf("internal error: %d values left after evaluating `%s`", len(values), root)
	}
	logger.Debug("Rooted evaluation finished.", "root", root, "value", values[0])
	return values[0], nil
}
