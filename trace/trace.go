package trace

import (
	"fmt"
	"io"
	"text/tabwriter"

	"racevis/machine"
	"racevis/state"
)

// A Step is one entry of an execution trace: the state the system is in and
// the action that produced it.
type Step struct {
	State  state.SystemState
	Action string
}

// Generate replays a path through the transition graph of m and narrates it.
//
// The replay starts at the machine's initial state, which is always emitted
// with the action "Initial state". Each element of path is an index into the
// machine's transition sequence. A transition is followed only if its From
// state equals the current replay state; indices that are out of range or
// whose transition starts elsewhere are skipped without advancing the replay
// and without an error. Callers rely on partial traces produced by skipped
// steps, so skipping must not be turned into a failure.
//
// The returned trace is never empty.
func Generate(m machine.Machine, path []int) []Step {
	current := m.States()[0]
	steps := []Step{{State: current, Action: "Initial state"}}

	transitions := m.Transitions()
	for _, idx := range path {
		if idx < 0 || idx >= len(transitions) {
			continue
		}
		t := transitions[idx]
		if t.From != current {
			continue
		}
		steps = append(steps, Step{State: t.To, Action: t.Action})
		current = t.To
	}
	return steps
}

// Format writes the trace as an aligned timeline, one step per line.
func Format(w io.Writer, steps []Step) error {
	wrt := tabwriter.NewWriter(w, 4, 4, 2, ' ', 0)
	for i, step := range steps {
		fmt.Fprintf(wrt, "%v\t%v\tP1: %v\tP2: %v\tCounter: %v\n",
			i, step.Action, step.State.P1, step.State.P2, step.State.Counter)
	}
	return wrt.Flush()
}
