package engine

import (
	"context"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/graph"
)

// Trace logs the state of every node at debug level.
func Trace(ctx context.Context, g *graph.Graph) {
	logger := ctxlog.FromContext(ctx)
	for _, n := range g.Nodes() {
		logger.Debug("Node state.", "id", n.ID, "kind", n.Kind.String(), "payload", n.Payload(), "position", n.Position)
	}
}
