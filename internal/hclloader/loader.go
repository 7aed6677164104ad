// Package hclloader loads HCL structure descriptions and translates them
// into the format-agnostic config model. Description files are merged over
// the built-in defaults: only attributes present in a file override the
// default record for that block.
package hclloader

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"spinekit/internal/config"
	"spinekit/internal/ctxlog"
	"spinekit/internal/fsutil"
	"spinekit/internal/schema"
)

// Loader parses HCL description files.
type Loader struct{}

// New creates a new HCL description loader.
func New() *Loader {
	return &Loader{}
}

// evalContext exposes a few math helpers to description files, so geometry
// can be written as expressions ("height = edge_default / pow(2, 0.5)" style
// constants are common in vertebra descriptions).
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
			"pow":   stdlib.PowFunc,
		},
	}
}

// Load reads the description at path (a single .hcl file or a directory of
// them), merges it over the built-in defaults, and returns the validated
// model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("description path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("discovering description files: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl files found under %s", path)
		}
	}
	logger.Debug("Discovered description files.", "count", len(files))

	parser := hclparse.NewParser()
	parsed := make([]*hcl.File, 0, len(files))
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", file, diags)
		}
		parsed = append(parsed, f)
	}

	var desc schema.Description
	if diags := gohcl.DecodeBody(hcl.MergeFiles(parsed), evalContext(), &desc); diags.HasErrors() {
		return nil, fmt.Errorf("decoding description: %w", diags)
	}

	model := translate(&desc)
	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Description loaded.",
		"segments", model.Spine.Segments,
		"rod_classes", len(model.Rods),
		"cable_classes", len(model.Cables))
	return model, nil
}

// translate merges the decoded description over the defaults.
func translate(desc *schema.Description) *config.Model {
	model := config.Default()

	if s := desc.Spine; s != nil {
		setInt(&model.Spine.Segments, s.Segments)
		setFloat(&model.Spine.Edge, s.Edge)
		setFloat(&model.Spine.Height, s.Height)
		setFloat(&model.Spine.Separation, s.Separation)
		setFloat(&model.Spine.BaseElevation, s.BaseElevation)
		setFloat(&model.Spine.TemplateElevation, s.TemplateElevation)
	}

	for _, block := range desc.Rods {
		// Unknown classes start from the moving-rod defaults.
		rec, ok := model.Rods[block.Class]
		if !ok {
			rec = model.Rods[config.TagRod]
		}
		setFloat(&rec.Radius, block.Radius)
		setFloat(&rec.Density, block.Density)
		setFloat(&rec.Friction, block.Friction)
		setFloat(&rec.RollFriction, block.RollFriction)
		setFloat(&rec.Restitution, block.Restitution)
		model.Rods[block.Class] = rec
	}

	for _, block := range desc.Cables {
		rec, ok := model.Cables[block.Class]
		if !ok {
			rec = model.Cables[config.TagCable]
		}
		setFloat(&rec.Stiffness, block.Stiffness)
		setFloat(&rec.Damping, block.Damping)
		setFloat(&rec.Pretension, block.Pretension)
		setFloat(&rec.MaxTension, block.MaxTension)
		setFloat(&rec.TargetVelocity, block.TargetVelocity)
		model.Cables[block.Class] = rec
	}

	return model
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
