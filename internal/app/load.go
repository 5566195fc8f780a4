package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/rainflow/internal/config"
	"github.com/vk/rainflow/internal/ctxlog"
	"github.com/vk/rainflow/internal/hcl_adapter"
	"github.com/vk/rainflow/internal/heightio"
	"github.com/vk/rainflow/internal/yaml_adapter"
)

// ErrConfig marks failures caused by invalid settings rather than by the
// simulation itself.
var ErrConfig = errors.New("invalid configuration")

func defaultLoaders() map[string]config.Loader {
	yamlLoader := yaml_adapter.NewLoader()
	return map[string]config.Loader{
		".hcl":  hcl_adapter.NewLoader(),
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	}
}

// LoadSettings resolves the simulation settings: built-in defaults, then the
// config file, then overrides.
func (a *App) LoadSettings(ctx context.Context) (*config.Model, error) {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)

	model := config.Default()
	if path := a.config.ConfigPath; path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		loader, ok := a.loaders[ext]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported config file extension %q (want .hcl, .yaml or .yml)", ErrConfig, ext)
		}
		loaded, err := loader.Load(ctx, path, model)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		model = *loaded
		logger.Debug("Config file loaded.", "path", path)
	}

	if err := model.ApplyOverrides(a.config.Overrides); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger.Info("Settings resolved.",
		"precision", model.Simulation.Precision,
		"order", model.Simulation.Order,
		"backend", model.Simulation.Backend,
		"max_passes", model.Simulation.MaxPasses,
		"monitor", model.Simulation.Monitor,
		"rain", model.Rain.Source,
	)
	return &model, nil
}

// LoadHeights reads ground heights from the configured file or the App's input.
func (a *App) LoadHeights(ctx context.Context) ([]float64, error) {
	logger := ctxlog.FromContext(a.context(ctx))

	path := a.config.InputPath
	if path == "" || path == "-" {
		heights, err := heightio.ReadHeights(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read heights: %w", err)
		}
		logger.Debug("Heights read from input.", "points", len(heights))
		return heights, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open heights file: %w", err)
	}
	defer f.Close()

	heights, err := heightio.ReadHeights(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read heights from %s: %w", path, err)
	}
	logger.Debug("Heights read from file.", "path", path, "points", len(heights))
	return heights, nil
}
