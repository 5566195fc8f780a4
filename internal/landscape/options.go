package landscape

import "log/slog"

// DefaultPrecision is the flow threshold used when none is configured.
// Zero is legal but may never converge under floating point rounding.
const DefaultPrecision = 0.01

type settings struct {
	precision float64
	order     Order
	topology  Topology
	monitor   bool
	maxPasses int
	logger    *slog.Logger
}

// Option configures a Landscape.
type Option func(s *settings)

func newSettings(opts ...Option) *settings {
	s := &settings{
		precision: DefaultPrecision,
		order:     DefaultOrder,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithPrecision sets the minimum water amount and height gap that cause flow.
func WithPrecision(p float64) Option {
	return func(s *settings) {
		s.precision = p
	}
}

// WithOrder sets the evaluation order.
func WithOrder(o Order) Option {
	return func(s *settings) {
		s.order = o
	}
}

// WithTopology replaces the default chain topology.
func WithTopology(t Topology) Option {
	return func(s *settings) {
		s.topology = t
	}
}

// WithMonitor enables the potential monitor.
func WithMonitor(enabled bool) Option {
	return func(s *settings) {
		s.monitor = enabled
	}
}

// WithMaxPasses caps the passes of a single stabilization run. Zero means no cap.
func WithMaxPasses(n int) Option {
	return func(s *settings) {
		s.maxPasses = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
