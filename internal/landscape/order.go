package landscape

import (
	"fmt"
	"slices"

	"github.com/vk/rainflow/internal/numeric"
)

// Order selects the sequence in which a pass visits points.
type Order string

const (
	// OrderHeightDesc visits points from the highest ground to the lowest.
	// Ties keep their input order.
	OrderHeightDesc Order = "height-desc"
	// OrderInput visits points in input order.
	OrderInput Order = "input"
)

// DefaultOrder is used when no order is configured.
const DefaultOrder = OrderHeightDesc

// ParseOrder validates an order name.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case OrderHeightDesc, OrderInput:
		return o, nil
	case "":
		return DefaultOrder, nil
	}
	return "", fmt.Errorf("unknown evaluation order %q: must be %q or %q", s, OrderHeightDesc, OrderInput)
}

// evaluationOrder builds the index permutation for the given order. It is
// computed once, from ground heights only.
func evaluationOrder[T numeric.Number[T]](order Order, points []Point[T]) ([]int, error) {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	switch order {
	case OrderInput:
	case OrderHeightDesc:
		slices.SortStableFunc(idx, func(a, b int) int {
			return points[b].ground.Cmp(points[a].ground)
		})
	default:
		return nil, fmt.Errorf("unknown evaluation order %q", order)
	}
	return idx, nil
}
