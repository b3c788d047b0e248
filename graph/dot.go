package graph

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"racevis/machine"
	"racevis/state"
)

// Fill colors used for the state nodes.
const (
	colorHighlight = "#FF6B6B" // states matched by the highlight predicate
	colorInitial   = "#4ECDC4" // the initial state
	colorSettled   = "#95E1D3" // both processes idle again
	colorDefault   = "#FFE66D"
)

// A DotOption configures the DOT export of a machine.
type DotOption interface {
	dotOpt()
}

// PetersonFieldsOption includes the flag and turn variables in node labels.
type PetersonFieldsOption struct{}

func (PetersonFieldsOption) dotOpt() {}

// HighlightOption marks states matched by Pred with the provided fill color.
// The default highlights race condition states in red.
type HighlightOption struct {
	Pred  func(state.SystemState) bool
	Color string
}

func (HighlightOption) dotOpt() {}

type dotConfig struct {
	petersonFields bool
	highlightPred  func(state.SystemState) bool
	highlightColor string
}

// WriteDot writes the state transition graph of m to w in Graphviz DOT
// format. Node ids are the positions of the states in the state sequence.
func WriteDot(w io.Writer, m machine.Machine, opts ...DotOption) error {
	cfg := dotConfig{
		highlightPred:  state.SystemState.IsRaceCondition,
		highlightColor: colorHighlight,
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case PetersonFieldsOption:
			cfg.petersonFields = true
		case HighlightOption:
			cfg.highlightPred = o.Pred
			cfg.highlightColor = o.Color
		}
	}

	states := m.States()

	fmt.Fprintln(w, "digraph statemachine {")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  node [shape=box, style=filled, fontname=\"Helvetica\"];")

	for idx, s := range states {
		label := fmt.Sprintf("S%v\n%v", idx, s.Label(cfg.petersonFields))
		fmt.Fprintf(w, "  s%v [label=\"%v\", fillcolor=\"%v\"];\n",
			idx, escapeDot(label), nodeColor(cfg, idx, s))
	}
	fmt.Fprintln(w)

	for i, t := range m.Transitions() {
		from := slices.Index(states, t.From)
		to := slices.Index(states, t.To)
		if from < 0 || to < 0 {
			return fmt.Errorf("transition %v (%v): endpoint not in the state sequence", i, t.Action)
		}
		attrs := fmt.Sprintf("label=\"%v\"", escapeDot(t.Action))
		if t.Process == 0 {
			// Joint, unordered step
			attrs += ", style=dashed"
		}
		fmt.Fprintf(w, "  s%v -> s%v [%v];\n", from, to, attrs)
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeColor(cfg dotConfig, idx int, s state.SystemState) string {
	switch {
	case cfg.highlightPred != nil && cfg.highlightPred(s):
		return cfg.highlightColor
	case idx == 0:
		return colorInitial
	case s.P1 == state.Idle && s.P2 == state.Idle:
		return colorSettled
	}
	return colorDefault
}

func escapeDot(s string) string {
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return strings.ReplaceAll(s, "\n", "\\n")
}
