package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/rainflow/internal/landscape"
	"github.com/vk/rainflow/internal/numeric"
	"github.com/vk/rainflow/internal/rainexpr"
)

// Setting keys, shared by config files and -set overrides.
const (
	KeyPrecision = "precision"
	KeyOrder     = "order"
	KeyBackend   = "backend"
	KeyMaxPasses = "max_passes"
	KeyMonitor   = "monitor"
	KeyRain      = "rain"
)

// DefaultMaxPasses bounds a single stabilization run.
const DefaultMaxPasses = 1_000_000

var (
	ErrUnknownKey   = errors.New("unknown configuration key")
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Model is the unified representation of the simulation settings.
type Model struct {
	Simulation Simulation
	Rain       Rain
}

// Simulation holds the engine settings.
type Simulation struct {
	Precision float64
	Order     string
	Backend   string
	MaxPasses int
	Monitor   bool
}

// Rain describes how much water each point receives per step.
type Rain struct {
	// Source is the expression text.
	Source string
	// Expr is set when the expression was decoded from HCL. It takes
	// precedence over Source.
	Expr hcl.Expression
}

// Default returns the built-in settings.
func Default() Model {
	return Model{
		Simulation: Simulation{
			Precision: landscape.DefaultPrecision,
			Order:     string(landscape.DefaultOrder),
			Backend:   numeric.FloatName,
			MaxPasses: DefaultMaxPasses,
		},
		Rain: Rain{Source: rainexpr.DefaultSource},
	}
}

// Keys lists every setting key.
func Keys() []string {
	return []string{KeyPrecision, KeyOrder, KeyBackend, KeyMaxPasses, KeyMonitor, KeyRain}
}

// Validate checks every setting and reports all problems at once.
func (m *Model) Validate() error {
	var errs []error
	s := m.Simulation

	if s.Precision < 0 || math.IsNaN(s.Precision) || math.IsInf(s.Precision, 0) {
		errs = append(errs, fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidValue, KeyPrecision, s.Precision))
	}
	if _, err := landscape.ParseOrder(s.Order); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyOrder, err))
	}
	if !slices.Contains(numeric.Names(), s.Backend) {
		errs = append(errs, fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidValue, KeyBackend, numeric.Names(), s.Backend))
	}
	if s.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, KeyMaxPasses, s.MaxPasses))
	}
	return errors.Join(errs...)
}

// RainExpr parses the configured rain expression.
func (m *Model) RainExpr() (*rainexpr.Expr, error) {
	var (
		e   *rainexpr.Expr
		err error
	)
	if m.Rain.Expr != nil {
		e, err = rainexpr.FromHCL(m.Rain.Expr, m.Rain.Source)
	} else {
		e, err = rainexpr.Parse(m.Rain.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyRain, err)
	}
	return e, nil
}
