package checking

import (
	"fmt"

	"golang.org/x/exp/slices"

	"racevis/machine"
)

// Validate checks the structural well-formedness of a machine: every
// transition endpoint must equal, by value, some entry of the machine's
// state sequence, and the state sequence must not be empty.
//
// The scenario builders satisfy this by construction; Validate exists so
// tests and tools can assert it.
func Validate(m machine.Machine) error {
	states := m.States()
	if len(states) == 0 {
		return fmt.Errorf("machine has no states")
	}
	for i, t := range m.Transitions() {
		if !slices.Contains(states, t.From) {
			return fmt.Errorf("transition %v (%v): from state %v is not in the state sequence", i, t.Action, t.From)
		}
		if !slices.Contains(states, t.To) {
			return fmt.Errorf("transition %v (%v): to state %v is not in the state sequence", i, t.Action, t.To)
		}
	}
	return nil
}
