package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/dag"
	"github.com/specialistvlad/mathgrid/internal/engine"
	"github.com/specialistvlad/mathgrid/internal/graph"
	"github.com/specialistvlad/mathgrid/internal/parser"
	"github.com/specialistvlad/mathgrid/internal/scheduler"
)

// ErrStrategyMismatch is returned when the rooted and frontier strategies
// disagree on the value of a node reachable from the root.
var ErrStrategyMismatch = errors.New("evaluation strategies disagree")

// Run executes the pipeline on the configured input file and writes the
// report to the app's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	f, err := os.Open(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	defer f.Close()

	report, err := a.Evaluate(ctx, f)
	if err != nil {
		return err
	}
	if err := report.Write(a.outW); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Evaluate reads declarations from r, builds the graph and evaluates it with
// the configured strategy.
func (a *App) Evaluate(ctx context.Context, r io.Reader) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	lines, err := parser.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	decls, err := parser.New(a.width, a.registry).ParseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	a.logger.Info("Input parsed.", "declarations", len(decls))

	build := func() (*graph.Graph, error) {
		g, err := dag.Build(ctx, decls, dag.Options{Placeholders: a.policy, Overrides: a.config.Overrides, Width: a.width})
		if err != nil {
			return nil, fmt.Errorf("failed to build dependency graph: %w", err)
		}
		return g, nil
	}

	g, err := build()
	if err != nil {
		return nil, err
	}
	a.logger.Info("Dependency graph built.", "node_count", g.Len())
	defer a.exportDOT(ctx, g)

	report := &Report{Strategy: a.config.Strategy, Root: a.config.Root}
	switch a.config.Strategy {
	case StrategyRooted:
		v, err := a.evaluateRooted(ctx, g)
		if err != nil {
			return nil, err
		}
		report.RootValue = v
	case StrategyFrontier:
		result, err := a.evaluateFrontier(ctx, g)
		if err != nil {
			return nil, err
		}
		report.Frontier = result
	case StrategyBoth:
		v, err := a.evaluateRooted(ctx, g)
		if err != nil {
			return nil, err
		}
		fresh, err := build()
		if err != nil {
			return nil, err
		}
		result, err := a.evaluateFrontier(ctx, fresh)
		if err != nil {
			return nil, err
		}
		if err := crossCheck(g, a.config.Root, result); err != nil {
			return nil, err
		}
		a.logger.Info("Strategies agree.", "root", a.config.Root)
		report.RootValue = v
		report.Frontier = result
	default:
		return nil, fmt.Errorf("unknown strategy %q", a.config.Strategy)
	}

	engine.Trace(ctx, g)
	return report, nil
}

func (a *App) evaluateRooted(ctx context.Context, g *graph.Graph) (uint64, error) {
	v, err := engine.New(a.registry, a.width).Evaluate(ctx, g, a.config.Root)
	if err != nil {
		return 0, fmt.Errorf("rooted evaluation failed: %w", err)
	}
	a.logger.Info("Root evaluated.", "root", a.config.Root, "value", v)
	return v, nil
}

func (a *App) evaluateFrontier(ctx context.Context, g *graph.Graph) (*scheduler.Result, error) {
	result, err := scheduler.New(a.registry, a.width).Evaluate(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("frontier evaluation failed: %w", err)
	}
	if len(result.Unresolved) > 0 {
		a.logger.Warn("Some nodes could not be resolved.", "unresolved", result.Unresolved)
	}
	a.logger.Info("Frontier evaluation finished.", "resolved", result.Values.Len(), "rounds", result.Rounds)
	return result, nil
}

// crossCheck compares every node reachable from root in the rooted graph with
// the frontier result.
func crossCheck(rooted *graph.Graph, root string, result *scheduler.Result) error {
	reachable, err := rooted.Reachable(root)
	if err != nil {
		return err
	}
	for _, id := range reachable {
		n, _ := rooted.Node(id)
		got, err := result.Value(id)
		if err != nil {
			return fmt.Errorf("%w: `%s` resolved by rooted evaluation only", ErrStrategyMismatch, id)
		}
		if got != n.Value {
			return fmt.Errorf("%w: `%s` is %d rooted and %d frontier", ErrStrategyMismatch, id, n.Value, got)
		}
	}
	return nil
}

// exportDOT writes the graph rendering to the configured path. Failures are
// logged and otherwise ignored.
func (a *App) exportDOT(ctx context.Context, g *graph.Graph) {
	logger := ctxlog.FromContext(ctx)
	if a.config.DotPath == "" {
		logger.Debug("DOT export disabled.")
		return
	}

	f, err := os.Create(a.config.DotPath)
	if err != nil {
		logger.Warn("Could not create DOT file.", "path", a.config.DotPath, "error", err)
		return
	}
	defer f.Close()

	if err := g.WriteDOT(f); err != nil {
		logger.Warn("Could not write DOT export.", "path", a.config.DotPath, "error", err)
		return
	}
	logger.Debug("DOT export written.", "path", a.config.DotPath)
}
