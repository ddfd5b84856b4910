package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/nodeid"
	"github.com/specialistvlad/mathgrid/internal/registry"
)

// separator splits an identifier from its payload.
const separator = ": "

// Declaration is one parsed line.
type Declaration struct {
	ID   string
	Line int
	// Kind is node.KindLiteral or node.KindOperator.
	Kind node.Kind

	// Value is set for literal declarations.
	Value node.Value
	// Op and Operands are set for operator declarations.
	Op       node.Op
	Operands [2]string
}

// IsLiteral reports whether the declaration carries a literal value.
func (d Declaration) IsLiteral() bool {
	return d.Kind == node.KindLiteral
}

// Node creates the graph node for the declaration.
func (d Declaration) Node() *node.Node {
	var n *node.Node
	if d.IsLiteral() {
		n = node.NewLiteral(d.ID, d.Value)
	} else {
		n = node.NewOperator(d.ID, d.Op, d.Operands[0], d.Operands[1])
	}
	n.Line = d.Line
	return n
}

// Parser parses declaration lines for a fixed width and operator set.
type Parser struct {
	width node.Width
	ops   *registry.Registry
}

// New creates a Parser. Literals wider than width are rejected and operator
// symbols are resolved through ops.
func New(width node.Width, ops *registry.Registry) *Parser {
	return &Parser{width: width, ops: ops}
}

// ParseLine parses a single line. The returned declaration has Line == 0;
// ParseLines fills it in.
func (p *Parser) ParseLine(line string) (Declaration, error) {
	id, rest, found := strings.Cut(line, separator)
	if !found {
		return Declaration{}, ErrMissingSeparator
	}
	if err := nodeid.Validate(id); err != nil {
		return Declaration{}, err
	}

	v, err := strconv.ParseUint(rest, 10, p.width.Bits())
	if err == nil {
		return Declaration{ID: id, Kind: node.KindLiteral, Value: v}, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Declaration{}, fmt.Errorf("%w: %s does not fit in %d bits", ErrLiteralOverflow, rest, p.width.Bits())
	}

	tokens := strings.Split(rest, " ")
	if len(tokens) != 3 {
		return Declaration{}, fmt.Errorf("%w: got %d tokens in %q", ErrOperandCount, len(tokens), rest)
	}
	lhs, symbol, rhs := tokens[0], tokens[1], tokens[2]
	if lhs == "" || rhs == "" {
		return Declaration{}, fmt.Errorf("%w: missing operand in %q", ErrOperandCount, rest)
	}

	o, ok := p.ops.Lookup(symbol)
	if !ok {
		return Declaration{}, fmt.Errorf("%w %q: must be one of %s", ErrUnknownOperator, symbol, strings.Join(p.ops.Symbols(), " "))
	}
	for _, operand := range []string{lhs, rhs} {
		if err := nodeid.Validate(operand); err != nil {
			return Declaration{}, fmt.Errorf("operand: %w", err)
		}
	}

	return Declaration{
		ID:       id,
		Kind:     node.KindOperator,
		Op:       o.Op,
		Operands: [2]string{lhs, rhs},
	}, nil
}
