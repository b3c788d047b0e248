package graph

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"racevis/machine"
)

// WriteMermaid writes the state transition graph of m to w as a Mermaid
// stateDiagram-v2, for embedding in markdown documents.
func WriteMermaid(w io.Writer, m machine.Machine) error {
	states := m.States()

	fmt.Fprintln(w, "stateDiagram-v2")
	fmt.Fprintln(w, "  [*] --> S0")

	for i, t := range m.Transitions() {
		from := slices.Index(states, t.From)
		to := slices.Index(states, t.To)
		if from < 0 || to < 0 {
			return fmt.Errorf("transition %v (%v): endpoint not in the state sequence", i, t.Action)
		}
		if _, err := fmt.Fprintf(w, "  S%v --> S%v: %v\n", from, to, t.Action); err != nil {
			return err
		}
	}
	return nil
}
