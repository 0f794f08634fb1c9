package timestep

import "testing"

func TestSetEndIsSticky(t *testing.T) {
	step := New(Mid, -1, 3, 4)
	if step.EndType() != Running {
		t.Fatalf("new timestep should be running, got %v", step.EndType())
	}

	step.SetEnd(TerminalStateReached)
	step.SetEnd(Timeout)

	if !step.Terminated() {
		t.Errorf("expected terminated, got %v", step.EndType())
	}
	if step.Truncated() {
		t.Errorf("end type should not change once set")
	}
}

func TestStepTypes(t *testing.T) {
	tests := []struct {
		typ   StepType
		first bool
		mid   bool
		last  bool
	}{
		{First, true, false, false},
		{Mid, false, true, false},
		{Last, false, false, true},
	}

	for _, test := range tests {
		step := New(test.typ, 0, 0, 0)
		if step.First() != test.first || step.Mid() != test.mid ||
			step.Last() != test.last {
			t.Errorf("%v: got first=%v mid=%v last=%v", test.typ,
				step.First(), step.Mid(), step.Last())
		}
	}
}
