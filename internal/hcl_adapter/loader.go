package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/rainflow/internal/config"
	"github.com/vk/rainflow/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot lists the top-level blocks a configuration file may contain.
type fileRoot struct {
	Simulation *simulationBlock `hcl:"simulation,block"`
	Rain       *rainBlock       `hcl:"rain,block"`
}

type simulationBlock struct {
	Precision *float64 `hcl:"precision,optional"`
	Order     *string  `hcl:"order,optional"`
	Backend   *string  `hcl:"backend,optional"`
	MaxPasses *int     `hcl:"max_passes,optional"`
	Monitor   *bool    `hcl:"monitor,optional"`
}

// rainBlock keeps its body raw: amount is an expression evaluated per point,
// not a value.
type rainBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses a single .hcl file and overlays its settings on base.
func (l *Loader) Load(ctx context.Context, path string, base config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return l.parse(ctx, src, path, base)
}

func (l *Loader) parse(ctx context.Context, src []byte, filename string, base config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := base
	if sim := root.Simulation; sim != nil {
		overlay(&model.Simulation.Precision, sim.Precision)
		overlay(&model.Simulation.Order, sim.Order)
		overlay(&model.Simulation.Backend, sim.Backend)
		overlay(&model.Simulation.MaxPasses, sim.MaxPasses)
		overlay(&model.Simulation.Monitor, sim.Monitor)
	}
	if root.Rain != nil {
		rain, err := translateRain(root.Rain, src)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
		}
		if rain != nil {
			model.Rain = *rain
		}
	}

	logger.Debug("HCL loading complete.", "simulation", root.Simulation != nil, "rain", model.Rain.Source)
	return &model, nil
}

// translateRain extracts the amount expression and its source text. A rain
// block without amount yields nil.
func translateRain(block *rainBlock, src []byte) (*config.Rain, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		if name != "amount" {
			return nil, fmt.Errorf("%s: unsupported argument %q in rain block", attr.NameRange, name)
		}
	}

	attr, ok := attrs["amount"]
	if !ok {
		return nil, nil
	}
	text := strings.TrimSpace(string(attr.Expr.Range().SliceBytes(src)))
	return &config.Rain{Source: text, Expr: attr.Expr}, nil
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
