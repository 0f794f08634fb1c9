package render

import (
	"fmt"
	"io"
	"time"
)

const clearScreen = "\033[H\033[2J"

// Console writes the text rendering of each frame to a writer, pausing
// for a fixed delay after each frame so that an episode can be watched
// in a terminal
type Console struct {
	w     io.Writer
	delay time.Duration
	clear bool
	sleep func(time.Duration)
}

// NewConsole returns a new Console writing to w. If clear is true, the
// terminal is cleared before each frame.
func NewConsole(w io.Writer, delay time.Duration, clear bool) *Console {
	return &Console{
		w:     w,
		delay: delay,
		clear: clear,
		sleep: time.Sleep,
	}
}

// Show writes the frame and then waits for the console's delay
func (c *Console) Show(f Frame) error {
	text := f.String()
	if c.clear {
		text = clearScreen + text
	}

	if _, err := io.WriteString(c.w, text); err != nil {
		return fmt.Errorf("show: could not write frame %d: %w", f.Step, err)
	}

	if c.delay > 0 && !f.Last {
		c.sleep(c.delay)
	}
	return nil
}
