package heightio

import (
	"bufio"
	"fmt"
	"io"
)

// Separator joins the values of one result line.
const Separator = ", "

// Writer prints one line of heights per rain step.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteLine writes values in order, separated by Separator, followed by a
// newline. Output is buffered until Flush.
func WriteLine[T fmt.Stringer](w *Writer, values []T) error {
	for i, v := range values {
		if i > 0 {
			if _, err := w.w.WriteString(Separator); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(v.String()); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
