package landscape

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/vk/rainflow/internal/numeric"
)

// Landscape owns the points of a simulation and the buffers reused across
// rain steps. It is not safe for concurrent use.
type Landscape[T numeric.Number[T]] struct {
	points    []Point[T]
	order     []int
	topology  Topology
	precision T
	maxPasses int
	observer  PassObserver[T]
	logger    *slog.Logger

	results   []T
	pending   []Transfer[T]
	neighbors []int
	targets   []int

	lastPasses  int
	totalPasses int
}

// New builds a landscape from ground heights in input order. Heights must be
// finite and non-negative.
func New[T numeric.Number[T]](backend numeric.Backend[T], ground []float64, opts ...Option) (*Landscape[T], error) {
	s := newSettings(opts...)

	if s.precision < 0 || math.IsNaN(s.precision) || math.IsInf(s.precision, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrecision, s.precision)
	}

	points := make([]Point[T], len(ground))
	for i, g := range ground {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, fmt.Errorf("%w: point %d has height %v", ErrInvalidGround, i, g)
		}
		points[i] = NewPoint(backend.FromFloat64(g))
	}

	topology := s.topology
	if topology == nil {
		topology = NewChain(len(points))
	}
	if topology.Len() != len(points) {
		return nil, fmt.Errorf("%w: topology covers %d points, landscape has %d", ErrTopologySize, topology.Len(), len(points))
	}

	order, err := evaluationOrder(s.order, points)
	if err != nil {
		return nil, err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	l := &Landscape[T]{
		points:    points,
		order:     order,
		topology:  topology,
		precision: backend.FromFloat64(s.precision),
		maxPasses: s.maxPasses,
		logger:    logger,
		results:   make([]T, len(points)),
		neighbors: make([]int, 0, 2),
		targets:   make([]int, 0, 2),
	}
	if s.monitor {
		l.observer = NewPotentialMonitor(backend.Potential)
	}
	return l, nil
}

// Rain adds distr(i) of water to every point i and stabilizes the landscape.
// When returnResult is true the heights of all points are returned in input
// order; the slice is reused by the next call. Otherwise the result is nil.
func (l *Landscape[T]) Rain(distr func(idx int) T, returnResult bool) ([]T, error) {
	for i := range l.points {
		l.points[i].AddWater(distr(i))
	}

	passes, err := l.Stabilize()
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Landscape stabilized.", "points", len(l.points), "passes", passes)

	if !returnResult {
		return nil, nil
	}
	for i, p := range l.points {
		l.results[i] = p.Height()
	}
	return l.results, nil
}

// RainUniform rains the same amount onto every point.
func (l *Landscape[T]) RainUniform(amount T, returnResult bool) ([]T, error) {
	return l.Rain(func(int) T { return amount }, returnResult)
}

// Precision returns the flow threshold.
func (l *Landscape[T]) Precision() T { return l.precision }

// Len returns the number of points.
func (l *Landscape[T]) Len() int { return len(l.points) }

// Points returns a copy of all points in input order.
func (l *Landscape[T]) Points() []Point[T] {
	return append([]Point[T](nil), l.points...)
}

// Heights returns a fresh snapshot of all heights in input order.
func (l *Landscape[T]) Heights() []T {
	heights := make([]T, len(l.points))
	for i, p := range l.points {
		heights[i] = p.Height()
	}
	return heights
}

// TotalWater sums the water held by all points.
func (l *Landscape[T]) TotalWater() T {
	var total T
	for _, p := range l.points {
		total = total.Add(p.water)
	}
	return total
}

// EvaluationOrder returns a copy of the point visiting order.
func (l *Landscape[T]) EvaluationOrder() []int {
	return append([]int(nil), l.order...)
}

// LastPasses returns the number of passes of the latest stabilization run.
func (l *Landscape[T]) LastPasses() int { return l.lastPasses }

// TotalPasses returns the number of passes over the landscape's lifetime.
func (l *Landscape[T]) TotalPasses() int { return l.totalPasses }
