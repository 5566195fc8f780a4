package landscape

import "github.com/vk/rainflow/internal/numeric"

// Point is one location on the landscape.
type Point[T numeric.Number[T]] struct {
	ground T
	water  T
}

// NewPoint returns a dry point with the given ground height.
func NewPoint[T numeric.Number[T]](ground T) Point[T] {
	return Point[T]{ground: ground}
}

// Ground returns the immutable ground height.
func (p Point[T]) Ground() T { return p.ground }

// Water returns the accumulated water above the ground.
func (p Point[T]) Water() T { return p.water }

// Height returns ground plus water.
func (p Point[T]) Height() T { return p.ground.Add(p.water) }

// AddWater increases the water level. amount must be non-negative.
func (p *Point[T]) AddWater(amount T) {
	p.water = p.water.Add(amount)
}

func (p *Point[T]) removeWater(amount T) {
	p.water = p.water.Sub(amount)
}
