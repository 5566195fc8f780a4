package numeric

import (
	"math"
	"strconv"
)

// potentialExponent is applied to each height by the float backend's potential.
const potentialExponent = 1.4

// Float is the native float64 backend.
type Float float64

func (f Float) Add(o Float) Float  { return f + o }
func (f Float) Sub(o Float) Float  { return f - o }
func (f Float) DivInt(n int) Float { return f / Float(n) }
func (f Float) Float64() float64   { return float64(f) }
func (f Float) String() string     { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (f Float) Cmp(o Float) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	}
	return 0
}

// FloatBackend is the default backend.
var FloatBackend = Backend[Float]{
	Name:        FloatName,
	FromFloat64: func(v float64) Float { return Float(v) },
	Potential: func(h Float) Float {
		return Float(math.Pow(float64(h), potentialExponent))
	},
}
