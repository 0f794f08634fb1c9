package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/marsrover/environment/envconfig"
	"github.com/samuelfneumann/marsrover/environment/gridworld"
	"github.com/samuelfneumann/marsrover/experiment"
)

// writeConfig writes the configuration of an open 3x3 grid to dir
func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	c := experiment.DefaultConfig()
	c.Episodes = 3000
	c.LogEvery = 1000
	c.EnvConf = envconfig.Config{
		Rows:           3,
		Cols:           3,
		Goal:           gridworld.Position{Row: 2, Col: 2},
		EpisodeCutoff:  100,
		StepReward:     gridworld.DefaultStepReward,
		GoalReward:     gridworld.DefaultGoalReward,
		ObstacleReward: gridworld.DefaultObstacleReward,
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	filename := filepath.Join(dir, "config.json")
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return filename
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := GetRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func exists(t *testing.T, filenames ...string) {
	t.Helper()
	for _, f := range filenames {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected %v to exist: %v", f, err)
		}
	}
}

func TestRunThenEvaluate(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir)
	table := filepath.Join(dir, "q.bin")

	stdout, stderr, err := execute(t, "run", "--config", config,
		"--table", table, "--seed", "3", "--delay", "0", "--clear=false",
		"--plot", filepath.Join(dir, "returns.png"),
		"--frames", filepath.Join(dir, "frames"),
		"--checkpoint-every", "1000", "--progress")
	if err != nil {
		t.Fatalf("run: %v\n%v", err, stderr)
	}

	if !strings.Contains(stdout, "SUCCESS") {
		t.Errorf("expected the rover to reach the goal:\n%v", stdout)
	}
	if !strings.Contains(stderr, "Episode 3000/3000 completed. Epsilon:") {
		t.Errorf("expected progress to be logged:\n%v", stderr)
	}
	if !strings.Contains(stderr, "[100% | elapsed:") {
		t.Errorf("expected a finished progress bar:\n%v", stderr)
	}
	exists(t, table, filepath.Join(dir, "q_1.bin"), filepath.Join(dir, "q_3.bin"),
		filepath.Join(dir, "returns.png"), filepath.Join(dir, "returns.bin"),
		filepath.Join(dir, "frames", "frame1.png"),
		filepath.Join(dir, "frames", "frame5.png"))

	stdout, stderr, err = execute(t, "evaluate", "--config", config,
		"--table", table, "--delay", "0", "--clear=false")
	if err != nil {
		t.Fatalf("evaluate: %v\n%v", err, stderr)
	}
	if !strings.Contains(stderr, "Loaded Q-table") {
		t.Errorf("expected the saved table to be loaded:\n%v", stderr)
	}
	if !strings.Contains(stdout, "Total reward: 97 in 4 steps") {
		t.Errorf("unexpected evaluation output:\n%v", stdout)
	}
}

func TestEvaluateWithoutTable(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir)
	table := filepath.Join(dir, "missing.bin")

	stdout, stderr, err := execute(t, "evaluate", "--config", config,
		"--table", table, "--seed", "11", "--delay", "0", "--clear=false")
	if err != nil {
		t.Fatalf("evaluate: %v\n%v", err, stderr)
	}

	if !strings.Contains(stderr, "training a new one") {
		t.Errorf("expected a new table to be trained:\n%v", stderr)
	}
	if !strings.Contains(stdout, "SUCCESS") {
		t.Errorf("expected the rover to reach the goal:\n%v", stdout)
	}
	if _, err := os.Stat(table); !os.IsNotExist(err) {
		t.Errorf("evaluate should not save a table")
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")
	if err := os.WriteFile(config, []byte(`{"Episodes": -1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := execute(t, "train", "--config", config); err == nil {
		t.Errorf("expected an error for a negative number of episodes")
	}
}
