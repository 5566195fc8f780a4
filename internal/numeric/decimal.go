package numeric

import "github.com/shopspring/decimal"

// Decimal is the arbitrary-precision backend. Division keeps
// decimal.DivisionPrecision fractional digits; addition and subtraction are
// exact, so moving water between points never creates or destroys mass.
//
// The zero value is 0.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal converts a float64 into its shortest exact decimal form.
func NewDecimal(v float64) Decimal {
	return Decimal{d: decimal.NewFromFloat(v)}
}

func (x Decimal) Add(y Decimal) Decimal { return Decimal{d: x.d.Add(y.d)} }
func (x Decimal) Sub(y Decimal) Decimal { return Decimal{d: x.d.Sub(y.d)} }
func (x Decimal) Cmp(y Decimal) int     { return x.d.Cmp(y.d) }
func (x Decimal) String() string        { return x.d.String() }

func (x Decimal) DivInt(n int) Decimal {
	return Decimal{d: x.d.Div(decimal.NewFromInt(int64(n)))}
}

func (x Decimal) Float64() float64 {
	f, _ := x.d.Float64()
	return f
}

// DecimalBackend computes the potential as the sum of squared heights, which
// stays exact for decimals.
var DecimalBackend = Backend[Decimal]{
	Name:        DecimalName,
	FromFloat64: NewDecimal,
	Potential: func(h Decimal) Decimal {
		return Decimal{d: h.d.Mul(h.d)}
	},
}
