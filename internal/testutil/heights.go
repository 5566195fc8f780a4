package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Float64er is implemented by every numeric backend.
type Float64er interface {
	Float64() float64
}

// Float64s converts backend values into plain float64 values.
func Float64s[T Float64er](vals []T) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.Float64()
	}
	return out
}

// RequireHeightsNear fails the test if any height differs from the expected
// one by more than tol.
func RequireHeightsNear(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("heights mismatch (tolerance %g) (-want +got):\n%s", tol, diff)
	}
}

// SumFloat64 adds up all values.
func SumFloat64(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
