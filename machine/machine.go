package machine

import (
	"racevis/state"
)

// A Transition is a directed, labeled edge between two system states.
//
// From and To reference states by value and must each equal some entry of
// the owning machine's state sequence. Process identifies which process
// performs the step: 1 or 2, or 0 for a joint, unordered step.
type Transition struct {
	From    state.SystemState
	To      state.SystemState
	Action  string
	Process int
}

// Machine is the read-only view shared by the scenario state machines.
//
// Both sequences are fixed at construction time and never mutated.
// The position of a state in States is its stable identifier; consumers use
// it as the node id when building graphs.
type Machine interface {
	States() []state.SystemState
	Transitions() []Transition
}
