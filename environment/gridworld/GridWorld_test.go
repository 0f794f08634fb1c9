package gridworld

import (
	"errors"
	"testing"
)

// newTestWorld creates a 3x3 gridworld with the goal at (2, 2), the
// start at (0, 0), and the given obstacles
func newTestWorld(t *testing.T, obstacles []Position,
	opts ...Option) *GridWorld {
	t.Helper()

	layout, err := NewLayout(3, 3, Position{2, 2}, obstacles...)
	if err != nil {
		t.Fatalf("could not create layout: %v", err)
	}
	starter, err := NewSingleStart(Position{0, 0}, layout)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	g, _, err := New(layout, NewDefaultGoal(layout), starter, 10, opts...)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}
	return g
}

func TestStateBijection(t *testing.T) {
	layout, err := NewLayout(4, 7, Position{3, 6})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for r := 0; r < 4; r++ {
		for c := 0; c < 7; c++ {
			p := Position{r, c}
			s := layout.StateOf(p)
			if s < 0 || s >= layout.NumStates() {
				t.Fatalf("state %d of %v out of range", s, p)
			}
			if got := layout.PositionOf(s); got != p {
				t.Errorf("PositionOf(StateOf(%v)) = %v", p, got)
			}
			seen[s] = true
		}
	}
	if len(seen) != layout.NumStates() {
		t.Errorf("expected %d distinct states, got %d", layout.NumStates(),
			len(seen))
	}
}

func TestBoundaryClamping(t *testing.T) {
	g := newTestWorld(t, nil)
	layout := g.Layout()

	tests := []struct {
		from   Position
		action Action
		want   Position
	}{
		{Position{0, 1}, North, Position{0, 1}},
		{Position{2, 1}, South, Position{2, 1}},
		{Position{1, 2}, East, Position{1, 2}},
		{Position{1, 0}, West, Position{1, 0}},
		{Position{1, 1}, North, Position{0, 1}},
		{Position{1, 1}, South, Position{2, 1}},
		{Position{1, 1}, East, Position{1, 2}},
		{Position{1, 1}, West, Position{1, 0}},
	}

	for _, test := range tests {
		next, _, _ := g.Transition(layout.StateOf(test.from), test.action)
		if got := layout.PositionOf(next); got != test.want {
			t.Errorf("%v from %v: got %v, want %v", test.action, test.from,
				got, test.want)
		}
	}
}

func TestObstacleSoftBlock(t *testing.T) {
	g := newTestWorld(t, []Position{{0, 1}})
	layout := g.Layout()

	start := layout.StateOf(Position{0, 0})
	next, reward, terminated := g.Transition(start, East)
	if next != start {
		t.Errorf("moving into an obstacle should not move the rover, got %v",
			layout.PositionOf(next))
	}
	if reward != DefaultStepReward {
		t.Errorf("reward for blocked move: got %v, want %v", reward,
			DefaultStepReward)
	}
	if terminated {
		t.Error("blocked move should not terminate")
	}
}

func TestPassableObstacles(t *testing.T) {
	g := newTestWorld(t, []Position{{0, 1}}, WithPassableObstacles())
	layout := g.Layout()

	next, reward, _ := g.Transition(layout.StateOf(Position{0, 0}), East)
	if got := layout.PositionOf(next); got != (Position{0, 1}) {
		t.Errorf("passable obstacle should be entered, got %v", got)
	}
	if reward != DefaultObstacleReward {
		t.Errorf("reward for entering obstacle: got %v, want %v", reward,
			DefaultObstacleReward)
	}
}

func TestGoalTermination(t *testing.T) {
	g := newTestWorld(t, nil)
	layout := g.Layout()

	next, reward, terminated := g.Transition(layout.StateOf(Position{2, 1}),
		East)
	if layout.PositionOf(next) != layout.Goal() || reward != 100 ||
		!terminated {
		t.Errorf("goal transition: got (%v, %v, %v)", layout.PositionOf(next),
			reward, terminated)
	}

	next, reward, terminated = g.Transition(layout.StateOf(Position{1, 1}),
		North)
	if layout.PositionOf(next) != (Position{0, 1}) || reward != -1 ||
		terminated {
		t.Errorf("safe transition: got (%v, %v, %v)", layout.PositionOf(next),
			reward, terminated)
	}
}

func TestEpisode(t *testing.T) {
	g := newTestWorld(t, nil)

	step := g.Reset()
	if !step.First() || g.Position() != (Position{0, 0}) {
		t.Fatalf("reset: got %v at %v", step, g.Position())
	}

	actions := []Action{South, South, East, East}
	var last bool
	for i, a := range actions {
		step, last = g.Step(int(a))
		if i < len(actions)-1 && last {
			t.Fatalf("episode ended early at step %d", i)
		}
	}
	if !last || !step.Terminated() {
		t.Errorf("expected terminated episode, got %v", step)
	}
}

func TestEpisodeTruncation(t *testing.T) {
	g := newTestWorld(t, nil)
	g.Reset()

	var last bool
	var n int
	for !last {
		_, last = g.Step(int(North))
		n++
	}

	step := g.CurrentTimeStep()
	if n != g.Cutoff() || !step.Truncated() {
		t.Errorf("expected truncation after %d steps, got %d steps (%v)",
			g.Cutoff(), n, step.EndType())
	}
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		cols      int
		goal      Position
		start     Position
		obstacles []Position
		want      error
	}{
		{"dimensions", 0, 3, Position{0, 0}, Position{0, 0}, nil,
			ErrDimensions},
		{"goal out of bounds", 3, 3, Position{3, 0}, Position{0, 0}, nil,
			ErrOutOfBounds},
		{"obstacle out of bounds", 3, 3, Position{2, 2}, Position{0, 0},
			[]Position{{-1, 0}}, ErrOutOfBounds},
		{"start out of bounds", 3, 3, Position{2, 2}, Position{0, 5}, nil,
			ErrOutOfBounds},
		{"start is goal", 3, 3, Position{2, 2}, Position{2, 2}, nil,
			ErrStartIsGoal},
		{"goal on obstacle", 3, 3, Position{2, 2}, Position{0, 0},
			[]Position{{2, 2}}, ErrBlocked},
		{"start on obstacle", 3, 3, Position{2, 2}, Position{0, 0},
			[]Position{{0, 0}}, ErrBlocked},
		{"unreachable", 3, 3, Position{2, 2}, Position{0, 0},
			[]Position{{1, 2}, {2, 1}}, ErrUnreachable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := func() error {
				layout, err := NewLayout(test.rows, test.cols, test.goal,
					test.obstacles...)
				if err != nil {
					return err
				}
				starter, err := NewSingleStart(test.start, layout)
				if err != nil {
					return err
				}
				_, _, err = New(layout, NewDefaultGoal(layout), starter, 10)
				return err
			}()

			if !errors.Is(err, test.want) {
				t.Errorf("got error %v, want %v", err, test.want)
			}
		})
	}
}

func TestGoalRewardRange(t *testing.T) {
	g := newTestWorld(t, []Position{{1, 1}, {0, 2}})
	if g.Min() != DefaultObstacleReward || g.Max() != DefaultGoalReward {
		t.Errorf("reward range: got [%v, %v] want [%v, %v]", g.Min(), g.Max(),
			DefaultObstacleReward, DefaultGoalReward)
	}

	want := []Position{{0, 2}, {1, 1}}
	got := g.Layout().Obstacles()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("obstacles: got %v want %v", got, want)
	}
}
