package agent

import (
	"github.com/samuelfneumann/marsrover/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error
}
