package rainexpr

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	VarIndex  = "index"
	VarStep   = "step"
	VarPoints = "points"
)

// DefaultSource rains one unit on every point.
const DefaultSource = "1.0"

var (
	ErrNegativeRain    = errors.New("rain amount must not be negative")
	ErrNotFinite       = errors.New("rain amount must be a finite number")
	ErrUnknownVariable = errors.New("unknown variable in rain expression")
)

var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"log":    stdlib.LogFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"pow":    stdlib.PowFunc,
	"signum": stdlib.SignumFunc,
}

// Expr is a parsed rain amount expression.
type Expr struct {
	src  string
	expr hcl.Expression

	constant bool
	value    float64
}

// Parse parses an expression from source text.
func Parse(src string) (*Expr, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "rain.amount", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse rain expression %q: %w", src, diags)
	}
	return FromHCL(expr, src)
}

// FromHCL wraps an expression decoded from a configuration file. src is only
// used for display.
func FromHCL(expr hcl.Expression, src string) (*Expr, error) {
	if expr == nil {
		return Parse(DefaultSource)
	}

	e := &Expr{src: strings.TrimSpace(src), expr: expr}
	if err := e.checkVariables(); err != nil {
		return nil, err
	}
	if err := e.checkFunctions(); err != nil {
		return nil, err
	}

	if len(expr.Variables()) == 0 {
		v, err := e.eval(&hcl.EvalContext{Functions: functions})
		if err != nil {
			return nil, err
		}
		e.constant = true
		e.value = v
	}
	return e, nil
}

// Constant returns the amount when the expression does not depend on any
// variable.
func (e *Expr) Constant() (float64, bool) {
	return e.value, e.constant
}

func (e *Expr) String() string { return e.src }

// Amounts fills dst with the rain amount of every point for the given step.
// len(dst) is the number of points.
func (e *Expr) Amounts(step int, dst []float64) error {
	if e.constant {
		for i := range dst {
			dst[i] = e.value
		}
		return nil
	}

	vars := map[string]cty.Value{
		VarStep:   cty.NumberIntVal(int64(step)),
		VarPoints: cty.NumberIntVal(int64(len(dst))),
	}
	ctx := &hcl.EvalContext{Variables: vars, Functions: functions}
	for i := range dst {
		vars[VarIndex] = cty.NumberIntVal(int64(i))
		v, err := e.eval(ctx)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		dst[i] = v
	}
	return nil
}

func (e *Expr) eval(ctx *hcl.EvalContext) (float64, error) {
	val, diags := e.expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluate rain expression %q: %w", e.src, diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("rain expression %q did not produce a number", e.src)
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("rain expression %q: %w", e.src, err)
	}
	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return 0, fmt.Errorf("rain expression %q: %w", e.src, err)
	}

	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, e.src)
	case f < 0:
		return 0, fmt.Errorf("%w: %q evaluated to %v", ErrNegativeRain, e.src, f)
	}
	return f, nil
}

// checkVariables rejects references to anything but the known variables.
func (e *Expr) checkVariables() error {
	unknown := make(map[string]struct{})
	for _, t := range e.expr.Variables() {
		switch name := t.RootName(); name {
		case VarIndex, VarStep, VarPoints:
		default:
			unknown[name] = struct{}{}
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	names := make([]string, 0, len(unknown))
	for n := range unknown {
		names = append(names, n)
	}
	sort.Strings(names) // deterministic error text
	return fmt.Errorf("%w: %s (allowed: %s, %s, %s)", ErrUnknownVariable, strings.Join(names, ", "), VarIndex, VarStep, VarPoints)
}
