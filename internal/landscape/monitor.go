package landscape

import "github.com/vk/rainflow/internal/numeric"

// PotentialMonitor checks that every pass strictly lowers the landscape
// potential Φ = Σ f(height) and never takes it below Σ f(ground), where f is
// the backend's potential function.
type PotentialMonitor[T numeric.Number[T]] struct {
	potential func(T) T

	bound   T
	current T
}

// NewPotentialMonitor creates a monitor for the given potential function.
func NewPotentialMonitor[T numeric.Number[T]](potential func(T) T) *PotentialMonitor[T] {
	return &PotentialMonitor[T]{potential: potential}
}

// Begin implements PassObserver.
func (m *PotentialMonitor[T]) Begin(points []Point[T]) {
	var bound, current T
	for _, p := range points {
		bound = bound.Add(m.potential(p.ground))
		current = current.Add(m.potential(p.Height()))
	}
	m.bound = bound
	m.current = current
}

// AfterPass implements PassObserver.
func (m *PotentialMonitor[T]) AfterPass(pass int, points []Point[T], transfers []Transfer[T]) error {
	var next T
	for _, p := range points {
		next = next.Add(m.potential(p.Height()))
	}

	var violation Violation
	switch {
	case next.Cmp(m.bound) < 0:
		violation = ViolationBelowBound
	case next.Cmp(m.current) > 0:
		violation = ViolationIncreased
	case next.Cmp(m.current) == 0:
		violation = ViolationStalled
	}
	if violation != "" {
		err := &ConvergenceError{
			Pass:      pass,
			Violation: violation,
			Previous:  m.current.String(),
			Current:   next.String(),
			Bound:     m.bound.String(),
			Transfers: make([]string, len(transfers)),
		}
		for i, t := range transfers {
			err.Transfers[i] = t.String()
		}
		return err
	}

	m.current = next
	return nil
}

// Potential returns the potential observed after the latest pass.
func (m *PotentialMonitor[T]) Potential() T { return m.current }

// Bound returns the bare-ground lower bound of the current run.
func (m *PotentialMonitor[T]) Bound() T { return m.bound }
