package experiment

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/samuelfneumann/marsrover/agent"
	"github.com/samuelfneumann/marsrover/environment"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/experiment/checkpointer"
	"github.com/samuelfneumann/marsrover/experiment/trackers"
	"github.com/samuelfneumann/marsrover/timestep"
	"github.com/samuelfneumann/marsrover/utils/progressbar"
)

// DefaultLogEvery is the default number of episodes between progress
// log lines
const DefaultLogEvery = 5000

// Explorer is an agent whose exploration rate can be inspected
type Explorer interface {
	agent.Agent
	Epsilon() float64
}

// Trainer runs an agent online in an environment for a fixed number of
// episodes. Every timestep is sent to the registered Trackers, and the
// registered Checkpointers are called after each episode.
type Trainer struct {
	env      environment.Environment
	agent    Explorer
	episodes int
	logEvery int
	logger   *log.Logger

	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer

	progress *progressbar.ProgressBar

	episode   int
	successes int
}

// TrainerOption configures a Trainer
type TrainerOption func(*Trainer)

// WithLogger sets the logger that progress is reported to
func WithLogger(l *log.Logger) TrainerOption {
	return func(t *Trainer) {
		t.logger = l
	}
}

// WithLogEvery sets the number of episodes between progress reports. A
// value of 0 disables progress reports.
func WithLogEvery(n int) TrainerOption {
	return func(t *Trainer) {
		t.logEvery = n
	}
}

// WithTrackers registers Trackers with the Trainer
func WithTrackers(tr ...trackers.Tracker) TrainerOption {
	return func(t *Trainer) {
		t.trackers = append(t.trackers, tr...)
	}
}

// WithCheckpointers registers Checkpointers with the Trainer
func WithCheckpointers(c ...checkpointer.Checkpointer) TrainerOption {
	return func(t *Trainer) {
		t.checkpointers = append(t.checkpointers, c...)
	}
}

// WithProgressBar draws a progress bar of the completed episodes to w
func WithProgressBar(w io.Writer) TrainerOption {
	return func(t *Trainer) {
		t.progress = progressbar.NewProgressBar(w, 40, t.episodes)
	}
}

// NewTrainer creates and returns a new Trainer which runs agent a for the
// given number of episodes in env. By default, progress is not logged.
func NewTrainer(env environment.Environment, a Explorer, episodes int,
	opts ...TrainerOption) *Trainer {
	t := &Trainer{
		env:      env,
		agent:    a,
		episodes: episodes,
		logEvery: DefaultLogEvery,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register registers a Tracker with the Trainer so that data generated
// during training can be tracked and saved
func (t *Trainer) Register(tr trackers.Tracker) {
	t.trackers = append(t.trackers, tr)
}

// RegisterCheckpointer registers a Checkpointer which is called after
// every episode
func (t *Trainer) RegisterCheckpointer(c checkpointer.Checkpointer) {
	t.checkpointers = append(t.checkpointers, c)
}

// RunEpisode runs a single episode, updating the agent on every
// transition and ending the agent's episode once the environment
// reports the last timestep
func (t *Trainer) RunEpisode() (EpisodeResult, error) {
	step := t.env.Reset()
	if err := t.agent.ObserveFirst(step); err != nil {
		return EpisodeResult{}, fmt.Errorf("runEpisode: %w", err)
	}
	t.track(step)

	ret := 0.0
	for !step.Last() {
		action := t.agent.SelectAction(step)
		step, _ = t.env.Step(action)
		t.track(step)
		ret += step.Reward

		if err := t.agent.Observe(action, step); err != nil {
			return EpisodeResult{}, fmt.Errorf("runEpisode: %w", err)
		}
		if err := t.agent.Step(); err != nil {
			return EpisodeResult{}, fmt.Errorf("runEpisode: %w", err)
		}
	}
	t.agent.EndEpisode()
	t.episode++

	result := t.result(step, ret)
	if result.Success {
		t.successes++
	}

	for _, c := range t.checkpointers {
		if err := c.Checkpoint(t.episode); err != nil {
			return result, fmt.Errorf("runEpisode: %w", err)
		}
	}

	if t.progress != nil {
		t.progress.Increment()
	}

	if t.logEvery > 0 && t.episode%t.logEvery == 0 {
		t.logger.Printf("Episode %d/%d completed. Epsilon: %.4f", t.episode,
			t.episodes, t.agent.Epsilon())
	}

	return result, nil
}

// Run runs all remaining episodes of the experiment
func (t *Trainer) Run() error {
	for t.episode < t.episodes {
		if _, err := t.RunEpisode(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	t.logger.Printf("Training finished: %d/%d episodes reached the goal",
		t.successes, t.episode)
	return nil
}

// Episodes returns the number of episodes completed
func (t *Trainer) Episodes() int {
	return t.episode
}

// Successes returns the number of completed episodes which ended in a
// terminal state
func (t *Trainer) Successes() int {
	return t.successes
}

// Save saves all the data cached by the Trackers to disk
func (t *Trainer) Save() error {
	var errs []error
	for _, tracker := range t.trackers {
		errs = append(errs, tracker.Save())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// track sends the current timestep to each tracker
func (t *Trainer) track(step timestep.TimeStep) {
	for _, tracker := range t.trackers {
		tracker.Track(step)
	}
}

func (t *Trainer) result(last timestep.TimeStep, ret float64) EpisodeResult {
	result := EpisodeResult{
		Episode: t.episode,
		State:   last.Observation,
		Return:  ret,
		Steps:   last.Number,
		Success: last.Terminated(),
		End:     last.EndType(),
	}

	if w, ok := t.env.(interface{ Layout() *gridworld.Layout }); ok {
		result.Position = w.Layout().PositionOf(last.Observation)
	}
	return result
}
