package graph

import (
	"fmt"
	"io"
	"strings"

	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// WriteDOT renders the graph's current state in DOT format. Node labels show
// the payload (folded operators show their value) and edge labels show the
// operand position.
func (g *Graph) WriteDOT(w io.Writer) error {
	out := dgraph.New(dgraph.StringHash, dgraph.Directed())

	for _, n := range g.Nodes() {
		attrs := []func(*dgraph.VertexProperties){
			dgraph.VertexAttribute("label", n.String()),
		}
		if !n.IsLiteral() {
			attrs = append(attrs, dgraph.VertexAttribute("shape", "box"))
		}
		if err := out.AddVertex(n.ID, attrs...); err != nil {
			return fmt.Errorf("failed to export node %q: %w", n.ID, err)
		}
	}

	edges, err := g.g.Edges()
	if err != nil {
		return fmt.Errorf("failed to read edges: %w", err)
	}
	for _, e := range edges {
		pos := e.Properties.Attributes[PositionAttr]
		if err := out.AddEdge(e.Source, e.Target, dgraph.EdgeAttribute("label", pos)); err != nil {
			return fmt.Errorf("failed to export edge %q -> %q: %w", e.Source, e.Target, err)
		}
	}

	return draw.DOT(out, w)
}

// DOT returns the DOT rendering as a string.
func (g *Graph) DOT() (string, error) {
	var sb strings.Builder
	if err := g.WriteDOT(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
