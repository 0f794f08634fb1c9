// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar is a progress bar that is redrawn on the same terminal
// line. Increment must be called after each iteration; the bar is only
// redrawn when its displayed percentage changes.
type ProgressBar struct {
	w               io.Writer
	width           int
	maxProgress     int
	currentProgress int
	lastPercent     int
	startTime       time.Time
	now             func() time.Time
}

// NewProgressBar returns a new progress bar that is width characters
// wide and reaches 100% after max calls to Increment
func NewProgressBar(w io.Writer, width, max int) *ProgressBar {
	return &ProgressBar{
		w:           w,
		width:       width,
		maxProgress: max,
		lastPercent: -1,
		startTime:   time.Now(),
		now:         time.Now,
	}
}

// Increment increments the internal progress counter and redraws the
// bar if needed
func (p *ProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}

	if percent := p.percent(); percent != p.lastPercent {
		p.lastPercent = percent
		p.Display()
	}
}

// Display draws the progress bar
func (p *ProgressBar) Display() {
	fmt.Fprintf(p.w, "\r\033[K%v", p.String())
	if p.currentProgress == p.maxProgress {
		fmt.Fprintln(p.w)
	}
}

func (p *ProgressBar) percent() int {
	if p.maxProgress <= 0 {
		return 100
	}
	return 100 * p.currentProgress / p.maxProgress
}

func (p *ProgressBar) String() string {
	filled := p.width
	if p.maxProgress > 0 {
		filled = p.width * p.currentProgress / p.maxProgress
	}

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&bar, "| [%d%% | elapsed: %v]", p.percent(),
		p.now().Sub(p.startTime).Truncate(time.Second))
	return bar.String()
}
