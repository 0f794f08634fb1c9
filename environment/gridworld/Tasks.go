package gridworld

import (
	"gonum.org/v1/gonum/floats"
)

// Default rewards of the Goal task
const (
	DefaultStepReward     float64 = -1.0
	DefaultGoalReward     float64 = 100.0
	DefaultObstacleReward float64 = -10.0
)

// Goal represents the task of reaching the goal cell of a Layout
type Goal struct {
	layout         *Layout
	stepReward     float64
	goalReward     float64
	obstacleReward float64
}

// NewGoal creates and returns a new task of reaching the goal cell of
// layout. Each transition into a safe cell is rewarded with stepReward,
// transitions into the goal with goalReward, and transitions into an
// obstacle cell with obstacleReward.
func NewGoal(layout *Layout, stepReward, goalReward,
	obstacleReward float64) *Goal {
	return &Goal{
		layout:         layout,
		stepReward:     stepReward,
		goalReward:     goalReward,
		obstacleReward: obstacleReward,
	}
}

// NewDefaultGoal returns a new Goal task with the default rewards
func NewDefaultGoal(layout *Layout) *Goal {
	return NewGoal(layout, DefaultStepReward, DefaultGoalReward,
		DefaultObstacleReward)
}

// GetReward returns the reward for a transition that results in
// position next
func (g *Goal) GetReward(next Position) float64 {
	switch g.layout.At(next) {
	case GoalCell:
		return g.goalReward
	case ObstacleCell:
		// Only reachable when obstacles are passable
		return g.obstacleReward
	default:
		return g.stepReward
	}
}

// AtGoal returns whether state is the goal state
func (g *Goal) AtGoal(state int) bool {
	return g.layout.PositionOf(state) == g.layout.Goal()
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{g.stepReward, g.goalReward, g.obstacleReward})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{g.stepReward, g.goalReward, g.obstacleReward})
}

// String returns the Goal as a string
func (g *Goal) String() string {
	return "Goal" + g.layout.Goal().String()
}
