package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
)

const (
	MinPoints         = 2
	MinUpperBound     = 4
	MaxUpperBound     = 1000
	DefaultUpperBound = 100
)

var (
	ErrPointsNum  = fmt.Errorf("points_num must be at least %d", MinPoints)
	ErrUpperBound = fmt.Errorf("upper_bound must be between %d and %d", MinUpperBound, MaxUpperBound)
)

// Generator produces integer ground heights. The same seed always yields the
// same sequence.
type Generator struct {
	r *rand.Rand
}

// New creates a deterministic generator using the provided seed.
func New(seed uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed, 0))}
}

// Validate checks the generator arguments.
func Validate(points, upperBound int) error {
	var errs []error
	if points < MinPoints {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrPointsNum, points))
	}
	if upperBound < MinUpperBound || upperBound > MaxUpperBound {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrUpperBound, upperBound))
	}
	return errors.Join(errs...)
}

// Heights returns points heights drawn uniformly from [0, upperBound].
func (g *Generator) Heights(points, upperBound int) ([]float64, error) {
	if err := Validate(points, upperBound); err != nil {
		return nil, err
	}
	heights := make([]float64, points)
	for i := range heights {
		heights[i] = float64(g.r.IntN(upperBound + 1))
	}
	return heights, nil
}

// Write prints one height per line, in the format the simulator reads.
func (g *Generator) Write(w io.Writer, points, upperBound int) error {
	heights, err := g.Heights(points, upperBound)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, h := range heights {
		bw.WriteString(strconv.FormatFloat(h, 'f', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
