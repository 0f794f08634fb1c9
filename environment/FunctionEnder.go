package environment

import (
	"github.com/samuelfneumann/marsrover/timestep"
)

// FunctionEnder ends an episode whenever a function of the environment
// state returns true.
type FunctionEnder struct {
	end     func(state int) bool
	endType timestep.EndType
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes with
// end type endType when f returns true.
func NewFunctionEnder(f func(state int) bool, endType timestep.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if f.end(t.Observation) {
		t.StepType = timestep.Last
		t.SetEnd(f.endType)
		return true
	}
	return false
}

// Enders combines multiple Enders. Enders are consulted in order and
// the first one to end the episode determines its EndType.
type Enders []Ender

// End ends the episode if any of the Enders end the episode
func (e Enders) End(t *timestep.TimeStep) bool {
	for _, ender := range e {
		if ender.End(t) {
			return true
		}
	}
	return false
}
