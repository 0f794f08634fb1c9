package gridworld

import (
	"errors"
	"fmt"
)

// Configuration errors reported when constructing a Layout or GridWorld
var (
	ErrDimensions  = errors.New("invalid dimensions")
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrStartIsGoal = errors.New("start position equals goal position")
	ErrBlocked     = errors.New("position is an obstacle")
	ErrUnreachable = errors.New("goal unreachable from start")
)

// Cell is the kind of a single grid cell
type Cell int

const (
	SafeCell Cell = iota
	ObstacleCell
	GoalCell
)

// Symbol returns the character used to render the cell
func (c Cell) Symbol() rune {
	switch c {
	case ObstacleCell:
		return ObstacleSymbol
	case GoalCell:
		return GoalSymbol
	default:
		return SafeSymbol
	}
}

func (c Cell) String() string {
	switch c {
	case ObstacleCell:
		return "Obstacle"
	case GoalCell:
		return "Goal"
	default:
		return "Safe"
	}
}

// Position is a (row, column) coordinate in a grid. Row 0 is the
// northern-most row and column 0 the western-most column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Action is a movement of the rover by one cell along a single axis
type Action int

const (
	North Action = iota
	South
	East
	West
)

// NumActions is the number of actions available in every state
const NumActions = 4

// Actions lists every action in index order
var Actions = []Action{North, South, East, West}

// Delta returns the change in row and column that the action produces
func (a Action) Delta() (row, col int) {
	switch a {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	panic(fmt.Sprintf("delta: no such action %d", int(a)))
}

func (a Action) String() string {
	switch a {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Layout is an immutable grid of cells with exactly one goal cell.
//
// States are indexed in row-major order: the state of position (r, c)
// is r*cols + c.
type Layout struct {
	rows, cols int
	cells      []Cell
	goal       Position
}

// NewLayout creates a new rows x cols layout with a goal cell and any
// number of obstacle cells. All other cells are safe.
func NewLayout(rows, cols int, goal Position, obstacles ...Position) (*Layout,
	error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("newLayout: %w: (%d, %d)", ErrDimensions, rows,
			cols)
	}

	l := &Layout{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		goal:  goal,
	}

	if !l.InBounds(goal) {
		return nil, fmt.Errorf("newLayout: goal %v: %w", goal, ErrOutOfBounds)
	}

	for _, o := range obstacles {
		if !l.InBounds(o) {
			return nil, fmt.Errorf("newLayout: obstacle %v: %w", o,
				ErrOutOfBounds)
		}
		if o == goal {
			return nil, fmt.Errorf("newLayout: goal %v: %w", goal, ErrBlocked)
		}
		l.cells[l.StateOf(o)] = ObstacleCell
	}
	l.cells[l.StateOf(goal)] = GoalCell

	return l, nil
}

// Dims returns the number of rows and columns in the layout
func (l *Layout) Dims() (rows, cols int) {
	return l.rows, l.cols
}

// NumStates returns the number of cells in the layout
func (l *Layout) NumStates() int {
	return l.rows * l.cols
}

// Goal returns the position of the goal cell
func (l *Layout) Goal() Position {
	return l.goal
}

// InBounds returns whether p lies within the layout
func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.rows && p.Col >= 0 && p.Col < l.cols
}

// At returns the kind of cell at position p
func (l *Layout) At(p Position) Cell {
	return l.cells[l.StateOf(p)]
}

// Obstacles returns the obstacle positions in row-major order
func (l *Layout) Obstacles() []Position {
	var obstacles []Position
	for s, cell := range l.cells {
		if cell == ObstacleCell {
			obstacles = append(obstacles, l.PositionOf(s))
		}
	}
	return obstacles
}

// StateOf converts a position into its state index
func (l *Layout) StateOf(p Position) int {
	return p.Row*l.cols + p.Col
}

// PositionOf converts a state index into its position
func (l *Layout) PositionOf(state int) Position {
	return Position{Row: state / l.cols, Col: state % l.cols}
}

// Move returns the position reached by taking action a from p. Moves
// that would leave the grid leave the position unchanged along that
// axis. Obstacles are not considered.
func (l *Layout) Move(p Position, a Action) Position {
	dRow, dCol := a.Delta()
	return Position{
		Row: min(max(p.Row+dRow, 0), l.rows-1),
		Col: min(max(p.Col+dCol, 0), l.cols-1),
	}
}

// Reachable returns whether to can be reached from from without
// passing through obstacles
func (l *Layout) Reachable(from, to Position) bool {
	if !l.InBounds(from) || !l.InBounds(to) {
		return false
	}

	visited := make([]bool, l.NumStates())
	queue := []Position{from}
	visited[l.StateOf(from)] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return true
		}

		for _, a := range Actions {
			next := l.Move(current, a)
			s := l.StateOf(next)
			if visited[s] || l.cells[s] == ObstacleCell {
				continue
			}
			visited[s] = true
			queue = append(queue, next)
		}
	}
	return false
}

// String renders the layout without a rover
func (l *Layout) String() string {
	return Render(Position{Row: -1, Col: -1}, l)
}
