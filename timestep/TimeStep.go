// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes how an episode ended. An episode that has not
// ended is Running.
type EndType int

const (
	// Running denotes an episode that has not yet ended
	Running EndType = iota

	// TerminalStateReached denotes an episode that ended because a
	// terminal state (the goal) was reached
	TerminalStateReached

	// Timeout denotes an episode that was truncated because its step
	// budget was exhausted
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Running"
	}
}

// TimeStep packages together a single timestep in an environment. The
// Observation is the index of the environment state.
type TimeStep struct {
	StepType
	Reward      float64
	Observation int
	Number      int
	end         EndType
}

// New constructs a new TimeStep
func New(t StepType, r float64, o int, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the way in which the episode ended. Once set to anything
// other than Running, the end type cannot be changed.
func (t *TimeStep) SetEnd(e EndType) {
	if t.end == Running {
		t.end = e
	}
}

// EndType returns how the episode ended
func (t *TimeStep) EndType() EndType {
	return t.end
}

// Terminated returns whether the episode ended by reaching a terminal
// state
func (t *TimeStep) Terminated() bool {
	return t.end == TerminalStateReached
}

// Truncated returns whether the episode ended because its step budget
// was exhausted
func (t *TimeStep) Truncated() bool {
	return t.end == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %d  |  " +
		"Step Number:  %v  |  End: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Observation, t.Number,
		t.end)
}
