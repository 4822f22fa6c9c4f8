package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/gosuri/uilive"
)

// shades are ordered from darkest to lightest
const shades = "@%#*+=-:. "

// Terminal is a Surface which presents frames as text on a terminal.
// Each frame overwrites the previous one in place.
type Terminal struct {
	writer     *uilive.Writer
	cols, rows int
	closed     bool
}

// NewTerminal returns a new Terminal which writes frames to out,
// downsampled to cols × rows characters
func NewTerminal(out io.Writer, cols, rows int) (*Terminal, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("newTerminal: terminal must have at least "+
			"one row and column, got (%v, %v)", cols, rows)
	}

	writer := uilive.New()
	writer.Out = out

	return &Terminal{writer: writer, cols: cols, rows: rows}, nil
}

// Present writes the frame to the terminal
func (t *Terminal) Present(frame image.Image) error {
	if t.closed {
		return fmt.Errorf("present: terminal is closed")
	}

	if _, err := io.WriteString(t.writer, Text(frame, t.cols,
		t.rows)); err != nil {
		return fmt.Errorf("present: %v", err)
	}
	return t.writer.Flush()
}

// Close closes the terminal. Frames cannot be presented on a closed
// terminal.
func (t *Terminal) Close() error {
	t.closed = true
	return nil
}

// Text returns a text representation of an image with cols × rows
// characters, where darker pixels are drawn with denser characters
func Text(img image.Image, cols, rows int) string {
	bounds := img.Bounds()
	var b strings.Builder
	b.Grow((cols + 1) * rows)

	for r := 0; r < rows; r++ {
		y := bounds.Min.Y + r*bounds.Dy()/rows
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + c*bounds.Dx()/cols
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			b.WriteByte(shades[int(gray.Y)*(len(shades)-1)/255])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
