package scheduler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/engine"
	"github.com/specialistvlad/mathgrid/internal/graph"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/registry"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Scheduler folds the graph frontier by frontier.
type Scheduler struct {
	ops   *registry.Registry
	width node.Width
}

// New creates a Scheduler applying operators from ops at the given width.
func New(ops *registry.Registry, width node.Width) *Scheduler {
	return &Scheduler{ops: ops, width: width}
}

// Result is the outcome of a frontier evaluation.
type Result struct {
	// Values holds every literal node. Declared literals come first, in
	// declaration order, followed by folded operators in resolution order.
	Values *orderedmap.OrderedMap[string, node.Value]
	// Unresolved lists nodes left in the operator or unresolved state, in
	// declaration order.
	Unresolved []string
	// Rounds is the number of frontiers that were folded.
	Rounds int
}

// Value returns the resolved value of id.
func (r *Result) Value(id string) (node.Value, error) {
	if v, ok := r.Values.Get(id); ok {
		return v, nil
	}
	return 0, &engine.UnresolvedError{ID: id}
}

// Ready returns the current frontier: operator nodes whose operands are both
// literals, in declaration order.
func (s *Scheduler) Ready(g *graph.Graph) ([]*node.Node, error) {
	_, ready, err := pendingCounts(g)
	return ready, err
}

// pendingCounts returns the pending operand count of every operator node and
// the operators whose count is zero, in declaration order.
func pendingCounts(g *graph.Graph) (map[string]int, []*node.Node, error) {
	pending := make(map[string]int)
	var ready []*node.Node
	for _, n := range g.Nodes() {
		if !n.IsOperator() {
			continue
		}
		count, err := pendingOperands(g, n)
		if err != nil {
			return nil, nil, err
		}
		pending[n.ID] = count
		if count == 0 {
			ready = append(ready, n)
		}
	}
	return pending, ready, nil
}

// Evaluate folds every resolvable operator node in place.
func (s *Scheduler) Evaluate(ctx context.Context, g *graph.Graph) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	dependents, err := g.Dependents()
	if err != nil {
		return nil, err
	}

	result := &Result{Values: orderedmap.New[string, node.Value]()}
	for _, n := range g.Nodes() {
		if n.IsLiteral() {
			result.Values.Set(n.ID, n.Value)
		}
	}

	pending, frontier, err := pendingCounts(g)
	if err != nil {
		return nil, err
	}
	logger.Debug("Frontier evaluation started.", "operators", len(pending), "initial_frontier", len(frontier))

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Rounds++
		logger.Debug("Folding frontier.", "round", result.Rounds, "size", len(frontier))

		var next []*node.Node
		for _, n := range frontier {
			v, err := s.fold(g, n)
			if err != nil {
				return nil, err
			}
			result.Values.Set(n.ID, v)
			logger.Debug("Folded operator.", "id", n.ID, "value", v)

			for _, parentID := range dependents[n.ID] {
				parent, ok := g.Node(parentID)
				if !ok || !parent.IsOperator() {
					continue
				}
				for _, operand := range parent.Operands {
					if operand == n.ID {
						pending[parentID]--
					}
				}
				if pending[parentID] == 0 {
					next = append(next, parent)
				}
			}
		}
		frontier = next
	}

	for _, n := range g.Nodes() {
		if !n.IsLiteral() {
			result.Unresolved = append(result.Unresolved, n.ID)
		}
	}
	logger.Debug("Frontier evaluation finished.", "rounds", result.Rounds, "resolved", result.Values.Len(), "unresolved", len(result.Unresolved))
	return result, nil
}

// fold applies n to its operands, in position order, and resolves it.
func (s *Scheduler) fold(g *graph.Graph, n *node.Node) (node.Value, error) {
	left, right, err := g.Operands(n)
	if err != nil {
		return 0, err
	}
	if !left.IsLiteral() || !right.IsLiteral() {
		return 0, fmt.Errorf("internal error: `%s` scheduled before its operands resolved", n.ID)
	}
	v, err := s.ops.Apply(n.Op, left.Value, right.Value, s.width)
	if err != nil {
		return 0, &engine.EvalError{ID: n.ID, Op: n.Op, Err: err}
	}
	if err := n.Resolve(v); err != nil {
		return 0, err
	}
	return v, nil
}

// pendingOperands counts the operand slots of n that are not yet literals.
func pendingOperands(g *graph.Graph, n *node.Node) (int, error) {
	left, right, err := g.Operands(n)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, operand := range []*node.Node{left, right} {
		if !operand.IsLiteral() {
			count++
		}
	}
	return count, nil
}
