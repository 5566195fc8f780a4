package landscape

import (
	"fmt"

	"github.com/vk/rainflow/internal/numeric"
)

// Transfer is an amount of water moving from one point to a neighbor.
type Transfer[T numeric.Number[T]] struct {
	From   int
	To     int
	Amount T
}

func (t Transfer[T]) String() string {
	return fmt.Sprintf("%d->%d:%s", t.From, t.To, t.Amount)
}

// PassObserver is notified around stabilization. Observers must not modify
// the points they are given.
type PassObserver[T numeric.Number[T]] interface {
	// Begin is called once before the first pass of a stabilization run.
	Begin(points []Point[T])
	// AfterPass is called after the transfers of a pass have been applied.
	// A non-nil error aborts stabilization.
	AfterPass(pass int, points []Point[T], transfers []Transfer[T]) error
}

// Stabilize runs passes until no transfer is recorded and returns the number
// of passes that moved water. On an already stable landscape it returns 0.
func (l *Landscape[T]) Stabilize() (int, error) {
	if l.observer != nil {
		l.observer.Begin(l.points)
	}

	passes := 0
	for {
		l.pending = l.collectTransfers(l.pending[:0])
		if len(l.pending) == 0 {
			break
		}
		if l.maxPasses > 0 && passes >= l.maxPasses {
			return passes, &PassLimitError{Limit: l.maxPasses, Pending: len(l.pending)}
		}

		l.applyTransfers(l.pending)
		passes++

		if l.observer != nil {
			if err := l.observer.AfterPass(passes, l.points, l.pending); err != nil {
				return passes, err
			}
		}
	}

	l.lastPasses = passes
	l.totalPasses += passes
	return passes, nil
}

// collectTransfers scans points in evaluation order and appends the
// transfers of one pass to dst. Points are only read here.
func (l *Landscape[T]) collectTransfers(dst []Transfer[T]) []Transfer[T] {
	for _, pi := range l.order {
		p := l.points[pi]
		if p.water.Cmp(l.precision) <= 0 {
			continue
		}

		height := p.Height()
		l.neighbors = l.topology.Neighbors(pi, l.neighbors[:0])
		l.targets = l.targets[:0]
		for _, ni := range l.neighbors {
			if height.Cmp(l.points[ni].Height().Add(l.precision)) > 0 {
				l.targets = append(l.targets, ni)
			}
		}
		if len(l.targets) == 0 {
			continue
		}

		share := p.water.DivInt(len(l.targets))
		remaining := p.water
		for _, ni := range l.targets {
			diff := height.Sub(l.points[ni].Height())
			if diff.Cmp(l.precision) <= 0 {
				continue
			}
			// Half the gap levels the pair; moving more would overshoot.
			amount := numeric.Min(share, diff.DivInt(2))
			// Rounded shares must not drain the point below zero.
			amount = numeric.Min(amount, remaining)
			remaining = remaining.Sub(amount)
			dst = append(dst, Transfer[T]{From: pi, To: ni, Amount: amount})
		}
	}
	return dst
}

func (l *Landscape[T]) applyTransfers(transfers []Transfer[T]) {
	for _, t := range transfers {
		l.points[t.From].removeWater(t.Amount)
		l.points[t.To].AddWater(t.Amount)
	}
}
