// Package numeric defines the arithmetic the landscape engine needs from a
// height type, along with the two backends the simulator ships with: a native
// float64 backend and an arbitrary-precision decimal backend.
//
// The engine is written once against the Number constraint; a Backend bundles
// the extra knowledge that cannot be expressed as methods on the value itself,
// such as how to build a value from a float64 input and which potential
// function the convergence monitor should use.
package numeric
