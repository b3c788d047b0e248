package machine

import (
	"racevis/state"
)

// RaceConditionStateMachine encodes the fixed lost-update scenario of two
// processes incrementing an unsynchronized shared counter.
//
// The scenario has three branches from the initial state: P1 increments
// alone, P2 increments alone (both safe branches end in the same idle state
// with counter 1), and the race branch where both processes read the counter
// before either has written it back. On the race branch the two writes store
// the same value, so one increment is lost and the counter ends at 1 even
// though two increments were performed.
type RaceConditionStateMachine struct {
	states      []state.SystemState
	transitions []Transition
}

func NewRaceConditionStateMachine() *RaceConditionStateMachine {
	m := &RaceConditionStateMachine{}
	m.generateStates()
	return m
}

func (m *RaceConditionStateMachine) generateStates() {
	// Initial state
	s0 := state.SystemState{P1: state.Idle, P2: state.Idle, Counter: 0}

	// P1 increments alone
	s1 := state.SystemState{P1: state.Reading, P2: state.Idle, Counter: 0}
	s2 := state.SystemState{P1: state.Writing, P2: state.Idle, Counter: 1}
	s3 := state.SystemState{P1: state.Idle, P2: state.Idle, Counter: 1}

	// P2 increments alone
	s4 := state.SystemState{P1: state.Idle, P2: state.Reading, Counter: 0}
	s5 := state.SystemState{P1: state.Idle, P2: state.Writing, Counter: 1}

	// Both read the counter before either write. Race!
	s6 := state.SystemState{P1: state.Reading, P2: state.Reading, Counter: 0}
	s7 := state.SystemState{P1: state.Writing, P2: state.Reading, Counter: 0}
	s8 := state.SystemState{P1: state.Writing, P2: state.Writing, Counter: 1} // Lost update
	s9 := state.SystemState{P1: state.Idle, P2: state.Writing, Counter: 1}

	m.states = []state.SystemState{s0, s1, s2, s3, s4, s5, s6, s7, s8, s9}

	m.transitions = []Transition{
		{From: s0, To: s1, Action: "P1 reads counter", Process: 1},
		{From: s1, To: s2, Action: "P1 writes counter", Process: 1},
		{From: s2, To: s3, Action: "P1 done", Process: 1},
		{From: s0, To: s4, Action: "P2 reads counter", Process: 2},
		{From: s4, To: s5, Action: "P2 writes counter", Process: 2},
		{From: s5, To: s3, Action: "P2 done", Process: 2},
		// The race branch
		{From: s0, To: s6, Action: "BOTH read (same value!)", Process: 0},
		{From: s6, To: s7, Action: "P1 writes", Process: 1},
		{From: s7, To: s9, Action: "P2 writes (overwrites P1!)", Process: 2},
		{From: s6, To: s8, Action: "BOTH write", Process: 0},
	}
}

// The ordered sequence of states as built. Index is the stable state id.
func (m *RaceConditionStateMachine) States() []state.SystemState {
	return m.states
}

// The ordered sequence of transitions as built.
func (m *RaceConditionStateMachine) Transitions() []Transition {
	return m.transitions
}

// RaceStates returns the states in which a race condition occurs, in the
// order they appear in the state sequence.
func (m *RaceConditionStateMachine) RaceStates() []state.SystemState {
	raceStates := []state.SystemState{}
	for _, s := range m.states {
		if s.IsRaceCondition() {
			raceStates = append(raceStates, s)
		}
	}
	return raceStates
}
