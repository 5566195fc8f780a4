// Package rainexpr evaluates the per-point rain amount.
//
// An amount is an HCL expression that may reference three variables: index
// (0-based point position), step (1-based rain step) and points (landscape
// size). A small set of numeric functions is available: abs, ceil, floor,
// log, max, min, pow and signum. Expressions without variables are constant
// and evaluated once.
package rainexpr
