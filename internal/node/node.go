package node

import (
	"fmt"
)

// Node is a single vertex in the expression graph: either a literal value or a
// pending binary operation over two other nodes.
type Node struct {
	// ID is the unique identifier the node was declared under.
	// Example: "root"
	ID string
	// Kind is the node's resolution state. Evaluation moves operator nodes
	// to KindLiteral in place.
	Kind Kind

	// Op is the arithmetic operation of an operator node. It keeps its last
	// value after the node resolves so diagnostics can still show it.
	Op Op
	// Value is the literal payload. Only meaningful when Kind is KindLiteral.
	Value Value
	// Operands holds the left (position 0) and right (position 1) operand
	// identifiers of an operator node.
	Operands [2]string

	// Position is the operand slot (0 or 1) this node occupies under its
	// parent operator, or -1 when no operator references it.
	Position int
	// Line is the 1-based input line the node was declared on. Placeholders
	// have no declaration and keep 0.
	Line int
}

// NewLiteral creates a node holding a literal value.
func NewLiteral(id string, v Value) *Node {
	return &Node{ID: id, Kind: KindLiteral, Value: v, Position: -1}
}

// NewOperator creates a node that applies op to the two named operands.
func NewOperator(id string, op Op, left, right string) *Node {
	return &Node{
		ID:       id,
		Kind:     KindOperator,
		Op:       op,
		Operands: [2]string{left, right},
		Position: -1,
	}
}

// NewPlaceholder creates an unresolved node for an identifier that is
// referenced but has not been declared.
func NewPlaceholder(id string) *Node {
	return &Node{ID: id, Kind: KindUnresolved, Position: -1}
}

// IsLiteral reports whether the node holds a final value.
func (n *Node) IsLiteral() bool {
	return n.Kind == KindLiteral
}

// IsOperator reports whether the node still waits for its operands.
func (n *Node) IsOperator() bool {
	return n.Kind == KindOperator
}

// Resolve folds an operator node into a literal holding v.
func (n *Node) Resolve(v Value) error {
	if n.Kind != KindOperator {
		return fmt.Errorf("node %q cannot be resolved from state %s", n.ID, n.Kind)
	}
	n.Kind = KindLiteral
	n.Value = v
	return nil
}

// Override replaces the payload with a literal regardless of the current state.
func (n *Node) Override(v Value) {
	n.Kind = KindLiteral
	n.Value = v
	n.Operands = [2]string{}
}

// Payload renders the node's payload, e.g. "5" or "a + b".
func (n *Node) Payload() string {
	switch n.Kind {
	case KindLiteral:
		return fmt.Sprintf("%d", n.Value)
	case KindOperator:
		return fmt.Sprintf("%s %s %s", n.Operands[0], n.Op.Symbol(), n.Operands[1])
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.ID + ": " + n.Payload()
}
