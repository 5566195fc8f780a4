package landscape

// Topology enumerates the points water may flow to from a given point.
type Topology interface {
	// Len reports how many points the topology covers.
	Len() int
	// Neighbors appends the neighbors of idx to dst and returns the extended
	// slice. The enumeration order must be deterministic.
	Neighbors(idx int, dst []int) []int
}

// Chain is a linear topology with closed ends: every point touches the point
// to its left and the point to its right, if they exist.
type Chain struct {
	n int
}

// NewChain returns a chain of n points.
func NewChain(n int) Chain {
	if n < 0 {
		n = 0
	}
	return Chain{n: n}
}

// Len implements Topology.
func (c Chain) Len() int { return c.n }

// Neighbors implements Topology, listing the left neighbor before the right one.
func (c Chain) Neighbors(idx int, dst []int) []int {
	if idx > 0 {
		dst = append(dst, idx-1)
	}
	if idx < c.n-1 {
		dst = append(dst, idx+1)
	}
	return dst
}
