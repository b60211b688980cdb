package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/oplcutils/gluegen/internal/ctxlog"
	"github.com/oplcutils/gluegen/internal/fsutil"
)

// fileRoot decodes the top-level blocks of a settings file.
type fileRoot struct {
	Generator *generatorBlock `hcl:"generator,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

// generatorBlock is the HCL shape of the generator settings. Every
// attribute is optional; unset attributes keep their defaults.
type generatorBlock struct {
	Input           *string `hcl:"input,optional"`
	Output          *string `hcl:"output,optional"`
	BufferSize      *int    `hcl:"buffer_size,optional"`
	OnSlotCollision *string `hcl:"on_slot_collision,optional"`
	OnMinorOverflow *string `hcl:"on_minor_overflow,optional"`
}

// Load reads generator settings from an HCL file and merges them over the
// defaults. path may name a file directly or a directory containing a
// single .hcl settings file.
func Load(ctx context.Context, path string) (Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := Default()

	file, err := resolveSettingsFile(path)
	if err != nil {
		return model, err
	}
	logger.Debug("Loading generator settings.", "file", file)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return model, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &root)
	if diags.HasErrors() {
		return model, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
	}
	if root.Generator == nil {
		return model, fmt.Errorf("settings file %s has no generator block", file)
	}

	g := root.Generator
	if g.Input != nil {
		model.InputPath = *g.Input
	}
	if g.Output != nil {
		model.OutputPath = *g.Output
	}
	if g.BufferSize != nil {
		model.BufferSize = *g.BufferSize
	}
	if g.OnSlotCollision != nil {
		model.OnSlotCollision = Policy(*g.OnSlotCollision)
	}
	if g.OnMinorOverflow != nil {
		model.OnMinorOverflow = Policy(*g.OnMinorOverflow)
	}

	if err := model.Validate(); err != nil {
		return model, fmt.Errorf("settings file %s: %w", file, err)
	}
	logger.Debug("Generator settings loaded.",
		"input", model.InputPath,
		"output", model.OutputPath,
		"buffer_size", model.BufferSize,
	)
	return model, nil
}

// evalContext publishes the built-in defaults to settings expressions, so a
// file can write e.g. buffer_size = defaults.buffer_size * 2.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"input":       cty.StringVal(DefaultInputPath),
				"output":      cty.StringVal(DefaultOutputPath),
				"buffer_size": cty.NumberIntVal(DefaultBufferSize),
			}),
		},
	}
}

// resolveSettingsFile turns a file-or-directory path into the settings file
// to parse.
func resolveSettingsFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("error accessing settings path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no .hcl settings file found under %s", path)
	}
	return files[0], nil
}
