package checking

import (
	"testing"

	"racevis/machine"
	"racevis/state"
)

// A machine with a transition endpoint that is not part of the state
// sequence, for exercising Validate.
type brokenMachine struct {
	states      []state.SystemState
	transitions []machine.Transition
}

func (m *brokenMachine) States() []state.SystemState       { return m.states }
func (m *brokenMachine) Transitions() []machine.Transition { return m.transitions }

func TestValidateScenarios(t *testing.T) {
	machines := []machine.Machine{
		machine.NewRaceConditionStateMachine(),
		machine.NewPetersonStateMachine(),
	}
	for i, m := range machines {
		if err := Validate(m); err != nil {
			t.Errorf("The scenario machine should be well formed on test %v. Got %v", i, err)
		}
	}
}

func TestValidateBrokenMachine(t *testing.T) {
	s0 := state.SystemState{P1: state.Idle, P2: state.Idle}
	unknown := state.SystemState{P1: state.Critical, P2: state.Critical, Counter: 42}

	m := &brokenMachine{
		states: []state.SystemState{s0},
		transitions: []machine.Transition{
			{From: s0, To: unknown, Action: "into the void", Process: 1},
		},
	}
	if err := Validate(m); err == nil {
		t.Fatalf("Validate should report a transition to a state outside the sequence")
	}

	empty := &brokenMachine{}
	if err := Validate(empty); err == nil {
		t.Fatalf("Validate should report an empty state sequence")
	}
}
