package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"racevis/machine"
)

func TestEmptyPath(t *testing.T) {
	m := machine.NewRaceConditionStateMachine()
	steps := Generate(m, []int{})
	if len(steps) != 1 {
		t.Fatalf("An empty path should produce exactly the initial entry. Got %v entries", len(steps))
	}
	if steps[0].State != m.States()[0] || steps[0].Action != "Initial state" {
		t.Fatalf("Received unexpected initial entry:\n%v", spew.Sdump(steps[0]))
	}
}

func TestRacePath(t *testing.T) {
	m := machine.NewRaceConditionStateMachine()

	// BOTH read, P1 writes, P2 overwrites
	steps := Generate(m, []int{6, 7, 8})
	if len(steps) != 4 {
		t.Fatalf("Expected a 4 entry trace. Got %v entries", len(steps))
	}
	last := steps[len(steps)-1]
	if last.Action != "P2 writes (overwrites P1!)" {
		t.Errorf("Received unexpected final action. Got %q", last.Action)
	}
	if last.State != m.States()[9] {
		t.Errorf("The trace should end in the lost update state:\n%v", spew.Sdump(last.State))
	}
	if last.State.Counter != 1 {
		t.Errorf("The lost update state should have counter 1. Got %v", last.State.Counter)
	}
}

var skipTests = []struct {
	path     []int
	expected int // number of trace entries
}{
	{[]int{1}, 1},       // does not start at the initial state
	{[]int{6, 0}, 2},    // valid step, then a transition rooted elsewhere
	{[]int{6, 0, 7}, 3}, // the skipped index must not advance the replay
	{[]int{42}, 1},      // out of range
	{[]int{-1}, 1},
	{[]int{3, 3}, 2}, // an already-taken transition no longer matches
}

func TestSkipsMismatchedSteps(t *testing.T) {
	m := machine.NewRaceConditionStateMachine()
	for i, test := range skipTests {
		steps := Generate(m, test.path)
		if len(steps) != test.expected {
			t.Errorf("Received unexpected trace length on test %v. Got %v", i, len(steps))
		}
	}
}

func TestFormat(t *testing.T) {
	m := machine.NewPetersonStateMachine()
	var buf bytes.Buffer
	if err := Format(&buf, Generate(m, []int{0, 1, 2})); err != nil {
		t.Fatalf("Format returned an error: %v", err)
	}
	out := buf.String()
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 4 {
		t.Errorf("Expected one line per step. Got:\n%v", out)
	}
	if !strings.Contains(out, "Initial state") || !strings.Contains(out, "P1 enters CS") {
		t.Errorf("Formatted trace is missing actions. Got:\n%v", out)
	}
}
