package machine

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"racevis/state"
)

func TestRaceConditionScenarioShape(t *testing.T) {
	m := NewRaceConditionStateMachine()
	if len(m.States()) != 10 {
		t.Fatalf("The scenario should have 10 states. Got %v", len(m.States()))
	}
	if len(m.Transitions()) != 10 {
		t.Fatalf("The scenario should have 10 transitions. Got %v", len(m.Transitions()))
	}

	initial := m.States()[0]
	if initial.P1 != state.Idle || initial.P2 != state.Idle || initial.Counter != 0 {
		t.Errorf("Unexpected initial state:\n%v", spew.Sdump(initial))
	}
}

func TestRaceStates(t *testing.T) {
	m := NewRaceConditionStateMachine()

	// The racing states are exactly the "both read" and the two write
	// interleavings, in sequence order.
	expected := []state.SystemState{m.States()[6], m.States()[7], m.States()[8]}
	raceStates := m.RaceStates()
	if len(raceStates) != len(expected) {
		t.Fatalf("Expected %v race states. Got %v", len(expected), len(raceStates))
	}
	for i, s := range raceStates {
		if s != expected[i] {
			t.Errorf("Received unexpected race state on test %v:\n%v", i, spew.Sdump(s))
		}
		if !s.IsRaceCondition() {
			t.Errorf("RaceStates returned a state that is not a race condition on test %v", i)
		}
	}
	for i, s := range m.States() {
		if s.IsRaceCondition() && i != 6 && i != 7 && i != 8 {
			t.Errorf("Unexpected race condition in state %v", i)
		}
	}
}

func TestLostUpdate(t *testing.T) {
	m := NewRaceConditionStateMachine()
	states := m.States()

	// Each safe branch completes exactly one increment, ending in the shared
	// idle state with counter 1. Running the two increments sequentially
	// therefore reaches counter 2.
	p1Delta := states[3].Counter - states[0].Counter
	if p1Delta != 1 {
		t.Errorf("The P1 branch should increment the counter by 1. Got %v", p1Delta)
	}
	if states[5].Counter != 1 || states[3] != m.Transitions()[5].To {
		t.Errorf("The P2 branch should end in the shared idle state with counter 1")
	}
	sequentialTotal := states[0].Counter + 2*p1Delta
	if sequentialTotal != 2 {
		t.Fatalf("Two sequential increments should reach counter 2. Got %v", sequentialTotal)
	}

	// On the race branch both processes performed their increment, yet the
	// counter ends strictly below the sequential total. The lost update.
	bothWrite := states[8]
	overwritten := states[9]
	if bothWrite.Counter != 1 {
		t.Errorf("The BOTH write state should have counter 1. Got %v", bothWrite.Counter)
	}
	if overwritten.Counter != 1 {
		t.Errorf("The overwritten state should have counter 1. Got %v", overwritten.Counter)
	}
	if bothWrite.Counter >= sequentialTotal || overwritten.Counter >= sequentialTotal {
		t.Errorf("The race branch should end strictly below the sequential total %v", sequentialTotal)
	}
}
