package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/rainflow/internal/config"
	"github.com/vk/rainflow/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

type document struct {
	Simulation struct {
		Precision *float64 `yaml:"precision"`
		Order     *string  `yaml:"order"`
		Backend   *string  `yaml:"backend"`
		MaxPasses *int     `yaml:"max_passes"`
		Monitor   *bool    `yaml:"monitor"`
	} `yaml:"simulation"`
	Rain struct {
		Amount *string `yaml:"amount"`
	} `yaml:"rain"`
}

// Load parses a YAML file and overlays its settings on base. Unknown keys
// are rejected.
func (l *Loader) Load(ctx context.Context, path string, base config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	model := base
	s := doc.Simulation
	if s.Precision != nil {
		model.Simulation.Precision = *s.Precision
	}
	if s.Order != nil {
		model.Simulation.Order = *s.Order
	}
	if s.Backend != nil {
		model.Simulation.Backend = *s.Backend
	}
	if s.MaxPasses != nil {
		model.Simulation.MaxPasses = *s.MaxPasses
	}
	if s.Monitor != nil {
		model.Simulation.Monitor = *s.Monitor
	}
	if doc.Rain.Amount != nil {
		model.Rain = config.Rain{Source: *doc.Rain.Amount}
	}

	logger.Debug("YAML loading complete.", "rain", model.Rain.Source)
	return &model, nil
}
