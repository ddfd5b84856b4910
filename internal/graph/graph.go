package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	dgraph "github.com/dominikbraun/graph"
	"github.com/specialistvlad/mathgrid/internal/node"
)

// PositionAttr is the edge attribute holding the operand position(s).
const PositionAttr = "position"

var (
	// ErrNodeExists is returned when an identifier is added twice.
	ErrNodeExists = errors.New("node already exists")
	// ErrNodeNotFound is returned for identifiers that are not in the graph.
	ErrNodeNotFound = errors.New("node not found")
	// ErrCycle is returned when an operand edge would close a cycle.
	ErrCycle = errors.New("edge would create a cycle")
)

// Graph is the expression DAG. It is not safe for concurrent use; the whole
// pipeline runs on a single goroutine.
type Graph struct {
	g dgraph.Graph[string, *node.Node]
	// order records insertion order so iteration is deterministic.
	order []string
}

func nodeHash(n *node.Node) string {
	return n.ID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		g: dgraph.New(nodeHash, dgraph.Directed(), dgraph.PreventCycles()),
	}
}

// AddNode registers a node. Adding an identifier twice returns ErrNodeExists.
func (g *Graph) AddNode(n *node.Node) error {
	if err := g.g.AddVertex(n); err != nil {
		if errors.Is(err, dgraph.ErrVertexAlreadyExists) {
			return fmt.Errorf("%w: %q", ErrNodeExists, n.ID)
		}
		return fmt.Errorf("failed to add node %q: %w", n.ID, err)
	}
	g.order = append(g.order, n.ID)
	return nil
}

// Node looks up a node by identifier.
func (g *Graph) Node(id string) (*node.Node, bool) {
	n, err := g.g.Vertex(id)
	if err != nil {
		return nil, false
	}
	return n, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*node.Node {
	nodes := make([]*node.Node, 0, len(g.order))
	for _, id := range g.order {
		if n, ok := g.Node(id); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// AddOperand adds the edge parent -> operand for the given position (0 or 1)
// and records the position on the operand node.
func (g *Graph) AddOperand(parent, operand string, position int) error {
	if position != 0 && position != 1 {
		return fmt.Errorf("invalid operand position %d for %q", position, parent)
	}
	operandNode, ok := g.Node(operand)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, operand)
	}
	if _, ok := g.Node(parent); !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, parent)
	}

	pos := strconv.Itoa(position)
	err := g.g.AddEdge(parent, operand, dgraph.EdgeAttribute(PositionAttr, pos))
	switch {
	case err == nil:
	case errors.Is(err, dgraph.ErrEdgeAlreadyExists):
		// Both operands name the same node, e.g. "a: b * b".
		existing, err := g.positions(parent, operand)
		if err != nil {
			return err
		}
		existing = append(existing, pos)
		sort.Strings(existing)
		if err := g.g.UpdateEdge(parent, operand, dgraph.EdgeAttribute(PositionAttr, strings.Join(existing, ","))); err != nil {
			return fmt.Errorf("failed to update edge %q -> %q: %w", parent, operand, err)
		}
	case errors.Is(err, dgraph.ErrEdgeCreatesCycle):
		return fmt.Errorf("%w: %q -> %q", ErrCycle, parent, operand)
	default:
		return fmt.Errorf("failed to add edge %q -> %q: %w", parent, operand, err)
	}

	operandNode.Position = position
	return nil
}

// positions reads the position attribute of an existing edge.
func (g *Graph) positions(parent, operand string) ([]string, error) {
	edge, err := g.g.Edge(parent, operand)
	if err != nil {
		return nil, fmt.Errorf("failed to read edge %q -> %q: %w", parent, operand, err)
	}
	raw := edge.Properties.Attributes[PositionAttr]
	if raw == "" {
		return nil, nil
	}
	return strings.Split(raw, ","), nil
}

// OperandSlots returns, for an operator node, the operand identifier found on
// the outgoing edges for each position. It is read from the edges, not from
// the node, so it can be used to check the two agree.
func (g *Graph) OperandSlots(parent string) (map[int][]string, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read adjacency: %w", err)
	}
	edges, ok := adjacency[parent]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, parent)
	}

	slots := make(map[int][]string)
	for target, edge := range edges {
		raw := edge.Properties.Attributes[PositionAttr]
		for _, p := range strings.Split(raw, ",") {
			pos, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("edge %q -> %q has invalid position %q", parent, target, raw)
			}
			slots[pos] = append(slots[pos], target)
		}
	}
	return slots, nil
}

// Operands returns the left and right operand nodes of an operator node.
func (g *Graph) Operands(n *node.Node) (left, right *node.Node, err error) {
	left, ok := g.Node(n.Operands[0])
	if !ok {
		return nil, nil, fmt.Errorf("%w: left operand %q of %q", ErrNodeNotFound, n.Operands[0], n.ID)
	}
	right, ok = g.Node(n.Operands[1])
	if !ok {
		return nil, nil, fmt.Errorf("%w: right operand %q of %q", ErrNodeNotFound, n.Operands[1], n.ID)
	}
	return left, right, nil
}

// Dependents returns, for every node, the sorted identifiers of the operator
// nodes that reference it.
func (g *Graph) Dependents() (map[string][]string, error) {
	predecessors, err := g.g.PredecessorMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read predecessors: %w", err)
	}
	dependents := make(map[string][]string, len(predecessors))
	for id, parents := range predecessors {
		ids := make([]string, 0, len(parents))
		for parent := range parents {
			ids = append(ids, parent)
		}
		sort.Strings(ids)
		dependents[id] = ids
	}
	return dependents, nil
}

// Reachable returns the identifiers reachable from root, root included, in
// depth-first order.
func (g *Graph) Reachable(root string) ([]string, error) {
	if _, ok := g.Node(root); !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, root)
	}
	var ids []string
	err := dgraph.DFS(g.g, root, func(id string) bool {
		ids = append(ids, id)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk graph from %q: %w", root, err)
	}
	return ids, nil
}
