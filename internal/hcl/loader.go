package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/mathgrid/internal/config"
	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is used to decode the top level of a settings file.
type fileRoot struct {
	Evaluation *evaluationBlock `hcl:"evaluation,block"`
	Export     *exportBlock     `hcl:"export,block"`
	Overrides  hcl.Expression   `hcl:"overrides,optional"`
}

type evaluationBlock struct {
	Root         *string `hcl:"root,optional"`
	Strategy     *string `hcl:"strategy,optional"`
	Width        *int    `hcl:"width,optional"`
	Placeholders *string `hcl:"placeholders,optional"`
}

type exportBlock struct {
	DotPath *string `hcl:"dot_path,optional"`
}

// Load parses the settings at path. A directory is searched for .hcl files,
// which are merged into one body; a block may still appear only once across
// all of them.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	paths, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	files := make([]*hcl.File, 0, len(paths))
	for _, p := range paths {
		file, diags := parser.ParseHCLFile(p)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", p, diags)
		}
		files = append(files, file)
	}
	logger.Debug("Settings files parsed.", "count", len(files))

	return l.decode(ctx, hcl.MergeFiles(files), path)
}

// LoadBytes parses settings held in memory. filename is only used in
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := &config.Model{}
	if root.Evaluation != nil {
		model.Evaluation = &config.Evaluation{
			Root:         root.Evaluation.Root,
			Strategy:     root.Evaluation.Strategy,
			Width:        root.Evaluation.Width,
			Placeholders: root.Evaluation.Placeholders,
		}
	}
	if root.Export != nil {
		model.Export = &config.Export{DotPath: root.Export.DotPath}
	}

	overrides, err := decodeOverrides(ctx, root.Overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to decode overrides in %s: %w", filename, err)
	}
	model.Overrides = overrides

	logger.Debug("HCL settings decoded.", "file", filename, "overrides", len(overrides))
	return model, nil
}
