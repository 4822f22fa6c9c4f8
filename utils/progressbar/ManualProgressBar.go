// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uilive"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
// Each display overwrites the previous one in place.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
	writer          *uilive.Writer
}

// NewManualProgressBar returns a new ManualProgressBar which is width
// characters wide, reaches 100% after max Increment() calls, and is
// displayed on out
func NewManualProgressBar(out io.Writer, width, max int) (
	*ManualProgressBar, error) {
	if width < 1 || max < 1 {
		return nil, fmt.Errorf("newManualProgressBar: width and max must be "+
			"positive, got (%v, %v)", width, max)
	}

	writer := uilive.New()
	writer.Out = out

	return &ManualProgressBar{
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
		writer:      writer,
	}, nil
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// String returns the current progress bar
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := p.currentProgress / p.maxProgress * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	fmt.Fprintf(&p.bar, "| [%.2f%% | elapsed: %v]",
		p.currentProgress/p.maxProgress*100,
		time.Since(p.startTime).Truncate(time.Second))

	return p.bar.String()
}

// Display displays the progress bar, replacing the previously
// displayed bar
func (p *ManualProgressBar) Display() error {
	if _, err := fmt.Fprintln(p.writer, p.String()); err != nil {
		return fmt.Errorf("display: %v", err)
	}
	return p.writer.Flush()
}
