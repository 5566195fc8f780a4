package landscape

import "github.com/vk/rainflow/internal/numeric"

// Solver is the contract the simulation driver depends on.
type Solver[T numeric.Number[T]] interface {
	// Rain adds distr(i) to point i and runs the landscape to a fixed point.
	Rain(distr func(idx int) T, returnResult bool) ([]T, error)
	// RainUniform rains the same amount everywhere.
	RainUniform(amount T, returnResult bool) ([]T, error)
	// Precision returns the flow threshold.
	Precision() T
}

var (
	_ Solver[numeric.Float]   = (*Landscape[numeric.Float])(nil)
	_ Solver[numeric.Decimal] = (*Landscape[numeric.Decimal])(nil)
)
