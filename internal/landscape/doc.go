// Package landscape implements the rain stabilization engine.
//
// A Landscape is a fixed sequence of ground points. Each call to Rain adds
// water to every point and then runs passes until water stops moving. A pass
// reads one consistent snapshot of the landscape, records every transfer
// from a point to its strictly lower neighbors, and only then applies them,
// so the outcome of a pass does not depend on the order points are visited in.
//
// The engine is generic over the numeric backend (see package numeric) and
// over the neighbor topology. The convergence monitor is an optional
// PassObserver and never changes the outcome of a pass.
package landscape
