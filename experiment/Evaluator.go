package experiment

import (
	"fmt"
	"iter"

	"github.com/samuelfneumann/marsrover/agent/tabular/policy"
	"github.com/samuelfneumann/marsrover/agent/tabular/qtable"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/render"
	"github.com/samuelfneumann/marsrover/timestep"
)

// Evaluator runs the greedy policy of a table in a gridworld from the
// gridworld's start state. Evaluation never changes the gridworld or
// the table, and consumes no randomness, so every rollout of the same
// table is identical.
type Evaluator struct {
	world *gridworld.GridWorld
}

// NewEvaluator returns a new Evaluator for world
func NewEvaluator(world *gridworld.GridWorld) *Evaluator {
	return &Evaluator{world: world}
}

// Check returns an error if q cannot be evaluated in the Evaluator's
// gridworld
func (e *Evaluator) Check(q *qtable.QTable) error {
	states, actions := q.Dims()
	if states != e.world.NumStates() || actions != e.world.NumActions() {
		return fmt.Errorf("check: table is %dx%d, environment has %d "+
			"states and %d actions: %w", states, actions, e.world.NumStates(),
			e.world.NumActions(), qtable.ErrShape)
	}
	return nil
}

// Rollout returns the frames of a greedy episode with respect to q. The
// first frame is the start position, and the episode ends when the
// goal is reached or the gridworld's episode cutoff is exhausted. Each
// iteration of the returned sequence is a fresh episode.
//
// Rollout panics if q does not match the gridworld, see Check.
func (e *Evaluator) Rollout(q *qtable.QTable) iter.Seq[render.Frame] {
	if err := e.Check(q); err != nil {
		panic(fmt.Sprintf("rollout: %v", err))
	}

	return func(yield func(render.Frame) bool) {
		layout := e.world.Layout()
		greedy := policy.NewGreedy(q)
		cutoff := e.world.Cutoff()

		state := e.world.Start()
		frame := render.Frame{Layout: layout, Position: layout.PositionOf(state)}
		if !yield(frame) {
			return
		}

		step := timestep.New(timestep.First, 0, state, 0)
		for n := 1; n <= cutoff; n++ {
			action := gridworld.Action(greedy.SelectAction(step))
			next, reward, terminated := e.world.Transition(state, action)

			frame.Position = layout.PositionOf(next)
			frame.Step = n
			frame.Action = action
			frame.Reward = reward
			frame.Return += reward

			switch {
			case terminated:
				frame.Last, frame.End = true, timestep.TerminalStateReached
			case n == cutoff:
				frame.Last, frame.End = true, timestep.Timeout
			}

			if !yield(frame) || frame.Last {
				return
			}

			state = next
			step = timestep.New(timestep.Mid, reward, next, n)
		}
	}
}

// Evaluate runs a greedy episode with respect to q, showing each frame
// on sink, and returns the result of the episode
func (e *Evaluator) Evaluate(q *qtable.QTable,
	sink render.Sink) (EpisodeResult, error) {
	if err := e.Check(q); err != nil {
		return EpisodeResult{}, fmt.Errorf("evaluate: %w", err)
	}

	var last render.Frame
	for frame := range e.Rollout(q) {
		if err := sink.Show(frame); err != nil {
			return EpisodeResult{}, fmt.Errorf("evaluate: %w", err)
		}
		last = frame
	}

	return EpisodeResult{
		Episode:  1,
		State:    last.Layout.StateOf(last.Position),
		Position: last.Position,
		Return:   last.Return,
		Steps:    last.Step,
		Success:  last.End == timestep.TerminalStateReached,
		End:      last.End,
	}, nil
}
