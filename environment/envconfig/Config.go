// Package envconfig provides configuration structs for configuring
// gridworld environments with default maps and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/timestep"
)

// Config describes a gridworld map, its rewards, and its episode
// cutoff
type Config struct {
	Rows, Cols        int
	Start             gridworld.Position
	Goal              gridworld.Position
	Obstacles         []gridworld.Position
	EpisodeCutoff     int
	StepReward        float64
	GoalReward        float64
	ObstacleReward    float64
	PassableObstacles bool
}

// MarsRover returns the configuration of the 10x10 Mars Rover map. The
// rover starts in the top left corner and must reach the bottom right
// corner, avoiding a vertical ridge, a horizontal ridge, and a crater.
func MarsRover() Config {
	return Config{
		Rows:  10,
		Cols:  10,
		Start: gridworld.Position{Row: 0, Col: 0},
		Goal:  gridworld.Position{Row: 9, Col: 9},
		Obstacles: []gridworld.Position{
			{Row: 2, Col: 4},
			{Row: 3, Col: 4},
			{Row: 6, Col: 2},
			{Row: 6, Col: 3},
			{Row: 6, Col: 4},
			{Row: 8, Col: 8},
		},
		EpisodeCutoff:  100,
		StepReward:     gridworld.DefaultStepReward,
		GoalReward:     gridworld.DefaultGoalReward,
		ObstacleReward: gridworld.DefaultObstacleReward,
	}
}

// Layout returns the grid layout described by the Config
func (c Config) Layout() (*gridworld.Layout, error) {
	layout, err := gridworld.NewLayout(c.Rows, c.Cols, c.Goal, c.Obstacles...)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return layout, nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create() (*gridworld.GridWorld, timestep.TimeStep, error) {
	layout, err := c.Layout()
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	starter, err := gridworld.NewSingleStart(c.Start, layout)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	task := gridworld.NewGoal(layout, c.StepReward, c.GoalReward,
		c.ObstacleReward)

	var opts []gridworld.Option
	if c.PassableObstacles {
		opts = append(opts, gridworld.WithPassableObstacles())
	}

	world, step, err := gridworld.New(layout, task, starter, c.EpisodeCutoff,
		opts...)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return world, step, nil
}

// Validate returns an error if the Config does not describe a valid
// environment
func (c Config) Validate() error {
	_, _, err := c.Create()
	return err
}
