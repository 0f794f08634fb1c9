// Package render displays the frames of a rover episode
package render

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/timestep"
)

// Frame is a snapshot of a single step of an episode. The first frame
// of an episode has Step 0 and shows the start position; Action and
// Reward are meaningless for it.
type Frame struct {
	Layout   *gridworld.Layout
	Position gridworld.Position
	Step     int
	Action   gridworld.Action
	Reward   float64
	Return   float64
	Last     bool
	End      timestep.EndType
}

// Grid returns the textual rendering of the grid in the frame
func (f Frame) Grid() string {
	return gridworld.Render(f.Position, f.Layout)
}

func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(f.Grid())
	b.WriteByte('\n')

	if f.Step == 0 {
		fmt.Fprintf(&b, "Step 0 | Start %v\n", f.Position)
		return b.String()
	}

	fmt.Fprintf(&b, "Step %d | Action %v | Reward %.0f | Return %.0f\n",
		f.Step, f.Action, f.Reward, f.Return)
	if f.Last {
		fmt.Fprintf(&b, "Episode ended: %v\n", f.End)
	}
	return b.String()
}
