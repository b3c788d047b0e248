package checking

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"racevis/machine"
	"racevis/state"
)

type predicateCheckerResponse struct {
	Result   bool                // True if all predicates hold. False otherwise
	Sequence []state.SystemState // The prefix of the state sequence ending at the violating state. nil if Result is true
	Test     int                 // The index of the violated predicate. -1 if Result is true
}

// Generate a response
// Returns two parameters, result, and description.
// Result is true if all predicates hold, false otherwise.
// Description is a formatted string providing a detailed description of the result.
// If result is false the description contains the sequence of states leading up to
// the violating state.
func (pcr predicateCheckerResponse) Response() (bool, string) {
	if pcr.Result {
		return pcr.Result, "All predicates holds"
	}
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 0, ' ', 0)
	out := fmt.Sprintf("Predicate broken. Predicate: %v. Sequence: \n", pcr.Test)
	for _, element := range pcr.Sequence {
		fmt.Fprintf(wrt, "-> %v \n", element)
	}
	wrt.Flush()
	out += buffer.String()
	return pcr.Result, out
}

// A function to be evaluated on the states of a machine
// It returns true if the predicate holds for the state and false otherwise
type Predicate func(s state.SystemState) bool

type PredicateChecker struct {
	// A slice of predicates that returns true if the predicate holds.
	// If a predicate is broken the checker returns a counterexample
	predicates []Predicate
}

func NewPredicateChecker(predicates ...Predicate) *PredicateChecker {
	return &PredicateChecker{
		predicates: predicates,
	}
}

// Checks that all predicates hold for all states of the machine.
// States are checked in sequence order and the search is interrupted at the
// first state that breaks a predicate.
func (pc *PredicateChecker) Check(m machine.Machine) *predicateCheckerResponse {
	sequence := []state.SystemState{}
	for _, s := range m.States() {
		sequence = append(sequence, s)
		if ok, index := pc.checkState(s); !ok {
			return &predicateCheckerResponse{
				Result:   false,
				Sequence: sequence,
				Test:     index,
			}
		}
	}
	return &predicateCheckerResponse{
		Result:   true,
		Sequence: nil,
		Test:     -1,
	}
}

func (pc *PredicateChecker) checkState(s state.SystemState) (bool, int) {
	for index, pred := range pc.predicates {
		if !pred(s) {
			return false, index
		}
	}
	return true, -1
}
