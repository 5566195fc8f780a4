package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/rainflow/internal/config"
	"github.com/vk/rainflow/internal/ctxlog"
	"github.com/vk/rainflow/internal/heightio"
	"github.com/vk/rainflow/internal/landscape"
	"github.com/vk/rainflow/internal/numeric"
	"github.com/vk/rainflow/internal/rainexpr"
)

// Run executes the main application logic: resolve settings, read the
// landscape, then rain the configured number of steps, printing one line of
// heights per step.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	settings, err := a.LoadSettings(ctx)
	if err != nil {
		return err
	}
	rain, err := settings.RainExpr()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	ground, err := a.LoadHeights(ctx)
	if err != nil {
		return err
	}

	switch settings.Simulation.Backend {
	case numeric.DecimalName:
		err = runSteps(ctx, numeric.DecimalBackend, ground, settings, rain, a.config.Steps, a.outW)
	default:
		err = runSteps(ctx, numeric.FloatBackend, ground, settings, rain, a.config.Steps, a.outW)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func landscapeOptions(ctx context.Context, s config.Simulation) []landscape.Option {
	order, _ := landscape.ParseOrder(s.Order) // validated by LoadSettings
	return []landscape.Option{
		landscape.WithPrecision(s.Precision),
		landscape.WithOrder(order),
		landscape.WithMaxPasses(s.MaxPasses),
		landscape.WithMonitor(s.Monitor),
		landscape.WithLogger(ctxlog.FromContext(ctx)),
	}
}

// runSteps drives the simulation over one numeric backend. Lines of
// completed steps are flushed even when a later step fails.
func runSteps[T numeric.Number[T]](
	ctx context.Context,
	backend numeric.Backend[T],
	ground []float64,
	settings *config.Model,
	rain *rainexpr.Expr,
	steps int,
	outW io.Writer,
) (err error) {
	logger := ctxlog.FromContext(ctx)

	l, err := landscape.New(backend, ground, landscapeOptions(ctx, settings.Simulation)...)
	if err != nil {
		return fmt.Errorf("failed to build landscape: %w", err)
	}
	logger.Debug("Landscape built.", "points", l.Len(), "backend", backend.Name, "order", l.EvaluationOrder())

	out := heightio.NewWriter(outW)
	defer func() {
		err = errors.Join(err, out.Flush())
	}()

	constant, isConstant := rain.Constant()
	uniform := backend.FromFloat64(constant)
	amounts := make([]float64, l.Len())
	distr := make([]T, l.Len())
	byIndex := func(idx int) T { return distr[idx] }

	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rain step %d: %w", step, err)
		}

		var heights []T
		if isConstant {
			heights, err = l.RainUniform(uniform, true)
		} else {
			if err := rain.Amounts(step, amounts); err != nil {
				return fmt.Errorf("rain step %d: %w", step, err)
			}
			for i, v := range amounts {
				distr[i] = backend.FromFloat64(v)
			}
			heights, err = l.Rain(byIndex, true)
		}
		if err != nil {
			return fmt.Errorf("rain step %d: %w", step, err)
		}

		if err := heightio.WriteLine(out, heights); err != nil {
			return fmt.Errorf("failed to write step %d: %w", step, err)
		}
		logger.Debug("Rain step finished.", "step", step, "passes", l.LastPasses(), "total_water", l.TotalWater().String())
	}

	logger.Info("Simulation finished.", "steps", steps, "points", l.Len(), "total_passes", l.TotalPasses())
	return nil
}
