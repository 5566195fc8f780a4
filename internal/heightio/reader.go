package heightio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNegativeHeight = errors.New("height must not be negative")
	ErrNotFinite      = errors.New("height must be a finite number")
)

// LineError reports a malformed input line. Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ReadHeights reads one ground height per line. Surrounding whitespace is
// ignored and the first blank line ends the input.
func ReadHeights(r io.Reader) ([]float64, error) {
	var heights []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			break
		}

		h, err := strconv.ParseFloat(text, 64)
		switch {
		case err != nil:
			return nil, &LineError{Line: line, Err: fmt.Errorf("parse %q: %w", text, errors.Unwrap(err))}
		case math.IsNaN(h) || math.IsInf(h, 0):
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w, got %q", ErrNotFinite, text)}
		case h < 0:
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w, got %v", ErrNegativeHeight, h)}
		}
		heights = append(heights, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading heights: %w", err)
	}
	return heights, nil
}
