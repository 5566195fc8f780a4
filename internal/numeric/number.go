package numeric

import "fmt"

// Backend names accepted by configuration.
const (
	FloatName   = "float64"
	DecimalName = "decimal"
)

// Number is the set of operations a height type must support. Values are
// immutable; every operation returns a new value.
type Number[T any] interface {
	fmt.Stringer

	Add(T) T
	Sub(T) T
	// DivInt divides by a positive count.
	DivInt(n int) T
	// Cmp returns -1, 0 or +1.
	Cmp(T) int
	Float64() float64
}

// Backend bundles construction and diagnostic helpers for a Number type.
type Backend[T Number[T]] struct {
	Name        string
	FromFloat64 func(float64) T
	// Potential maps one height to its share of the convergence potential.
	// It must be strictly convex on non-negative heights.
	Potential func(T) T
}

// Min returns the smaller of a and b, preferring a on ties.
func Min[T Number[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Names lists the supported backend names.
func Names() []string {
	return []string{FloatName, DecimalName}
}
