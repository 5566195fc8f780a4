// Package heightio reads ground heights and writes simulation results in the
// line-oriented text format used by the command line tools.
package heightio
