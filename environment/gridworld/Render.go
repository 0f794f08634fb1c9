package gridworld

import "strings"

// Symbols used when rendering a grid
const (
	SafeSymbol     = '.'
	ObstacleSymbol = 'X'
	GoalSymbol     = 'G'
	RoverSymbol    = 'R'
)

// Render renders layout as text with the rover at position p. Cells
// are separated by spaces and rows by newlines. If p is outside of the
// layout, no rover is drawn.
func Render(p Position, layout *Layout) string {
	rows, cols := layout.Dims()

	var b strings.Builder
	b.Grow(rows * cols * 2)
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			current := Position{Row: r, Col: c}
			if current == p {
				b.WriteRune(RoverSymbol)
			} else {
				b.WriteRune(layout.At(current).Symbol())
			}
		}
	}
	return b.String()
}
