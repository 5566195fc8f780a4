package landscape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConvergence marks a failed convergence check. It always indicates an
	// engine defect, never bad input.
	ErrConvergence = errors.New("landscape: convergence check failed")

	// ErrPassLimit is returned when stabilization needs more passes than allowed.
	ErrPassLimit = errors.New("landscape: pass limit exceeded")

	// ErrInvalidGround rejects negative or non-finite ground heights.
	ErrInvalidGround = errors.New("landscape: invalid ground height")

	// ErrInvalidPrecision rejects negative or non-finite precision.
	ErrInvalidPrecision = errors.New("landscape: invalid precision")

	// ErrTopologySize is returned when a topology does not cover every point.
	ErrTopologySize = errors.New("landscape: topology size mismatch")
)

// Violation names the inequality a convergence check found broken.
type Violation string

const (
	ViolationBelowBound Violation = "potential dropped below bare-ground bound"
	ViolationIncreased  Violation = "potential increased"
	ViolationStalled    Violation = "potential did not decrease although water moved"
)

// ConvergenceError describes a failed convergence check together with the
// transfers of the pass that triggered it.
type ConvergenceError struct {
	Pass      int
	Violation Violation
	Previous  string
	Current   string
	Bound     string
	Transfers []string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("convergence check failed on pass %d: %s (previous=%s current=%s bound=%s); pending transfers: [%s]",
		e.Pass, e.Violation, e.Previous, e.Current, e.Bound, strings.Join(e.Transfers, ", "))
}

// Unwrap lets errors.Is match ErrConvergence.
func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// PassLimitError reports a stabilization run cut short by the pass limit.
type PassLimitError struct {
	Limit   int
	Pending int
}

func (e *PassLimitError) Error() string {
	return fmt.Sprintf("stabilization did not converge within %d passes (%d transfers still pending)", e.Limit, e.Pending)
}

// Unwrap lets errors.Is match ErrPassLimit.
func (e *PassLimitError) Unwrap() error { return ErrPassLimit }
