package dag

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/graph"
	"github.com/specialistvlad/mathgrid/internal/node"
	"github.com/specialistvlad/mathgrid/internal/parser"
)

// Build constructs a complete, validated expression graph from declarations.
func Build(ctx context.Context, decls []parser.Declaration, opts Options) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "declarations", len(decls), "placeholders", opts.Placeholders.String())
	g := graph.New()

	// First pass: one node per declaration.
	if err := createNodes(ctx, decls, g); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	if err := applyOverrides(ctx, opts.Overrides, opts.Width, g); err != nil {
		return nil, err
	}

	// Second pass: resolve operands and add positioned edges.
	if err := linkNodes(ctx, decls, g, opts.Placeholders); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node linking complete.", "node_count", g.Len())

	if err := Validate(g); err != nil {
		return nil, fmt.Errorf("error validating expression graph: %w", err)
	}
	logger.Debug("Build: Graph construction successful.")
	return g, nil
}

// createNodes performs the first pass of graph creation.
func createNodes(ctx context.Context, decls []parser.Declaration, g *graph.Graph) error {
	logger := ctxlog.FromContext(ctx)
	for _, d := range decls {
		if err := g.AddNode(d.Node()); err != nil {
			if errors.Is(err, graph.ErrNodeExists) {
				first, _ := g.Node(d.ID)
				return fmt.Errorf("%w %q on line %d, first declared on line %d", ErrDuplicateIdentifier, d.ID, d.Line, first.Line)
			}
			return err
		}
		logger.Debug("Created node.", "id", d.ID, "kind", d.Kind.String(), "line", d.Line)
	}
	return nil
}

// applyOverrides replaces node payloads with configured literals.
func applyOverrides(ctx context.Context, overrides map[string]node.Value, width node.Width, g *graph.Graph) error {
	if len(overrides) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok {
			return fmt.Errorf("%w: override for %q", ErrUnknownIdentifier, id)
		}
		if width != 0 && overrides[id] > width.Max() {
			return fmt.Errorf("%w: override %q = %d exceeds %d-bit maximum %d", parser.ErrLiteralOverflow, id, overrides[id], width.Bits(), width.Max())
		}
		logger.Debug("Overriding node payload.", "id", id, "was", n.Payload(), "value", overrides[id])
		n.Override(overrides[id])
	}
	return nil
}

// linkNodes performs the second pass, resolving operand identifiers.
func linkNodes(ctx context.Context, decls []parser.Declaration, g *graph.Graph, policy PlaceholderPolicy) error {
	logger := ctxlog.FromContext(ctx)
	for _, d := range decls {
		if d.IsLiteral() {
			continue
		}
		n, _ := g.Node(d.ID)
		if !n.IsOperator() {
			// Overridden.
			continue
		}
		nodeLogger := logger.With("node_id", d.ID)

		for position, operand := range d.Operands {
			if err := resolveOperand(ctx, g, d, operand, policy); err != nil {
				return err
			}
			if err := g.AddOperand(d.ID, operand, position); err != nil {
				if errors.Is(err, graph.ErrCycle) {
					return fmt.Errorf("%w: %q (line %d) depends on %q", ErrCycle, d.ID, d.Line, operand)
				}
				return err
			}
			nodeLogger.Debug("Linked operand.", "operand", operand, "position", position)
		}
	}
	return nil
}

// resolveOperand makes sure the operand exists, applying the placeholder policy.
func resolveOperand(ctx context.Context, g *graph.Graph, d parser.Declaration, operand string, policy PlaceholderPolicy) error {
	if _, ok := g.Node(operand); ok {
		return nil
	}
	if policy == PlaceholderReject {
		return fmt.Errorf("%w %q referenced by %q on line %d", ErrUnknownIdentifier, operand, d.ID, d.Line)
	}
	ctxlog.FromContext(ctx).Debug("Creating placeholder for undeclared operand.", "id", operand, "referenced_by", d.ID)
	return g.AddNode(node.NewPlaceholder(operand))
}
