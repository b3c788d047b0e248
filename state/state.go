package state

import (
	"fmt"
	"hash/fnv"
)

// ProcessState is the control state of one modeled process.
type ProcessState int

const (
	Idle ProcessState = iota
	Reading
	Writing
	Waiting
	Critical
)

func (ps ProcessState) String() string {
	switch ps {
	case Idle:
		return "IDLE"
	case Reading:
		return "READING"
	case Writing:
		return "WRITING"
	case Waiting:
		return "WAITING"
	case Critical:
		return "CRITICAL"
	}
	return fmt.Sprintf("ProcessState(%d)", int(ps))
}

// The global state of the two-process system at one point of a scenario.
//
// Counter is the shared counter in the race scenario and the number of
// completed critical section entries in the Peterson scenario.
// Flag1, Flag2 and Turn are only meaningful in the Peterson scenario and
// remain at their zero values otherwise.
//
// SystemState is a comparable value type. Two states are equal iff all six
// fields are equal, and Hash is derived from the same six fields, so states
// can be used as map keys and compared for graph deduplication.
type SystemState struct {
	P1      ProcessState
	P2      ProcessState
	Counter int

	Flag1 bool
	Flag2 bool
	Turn  int
}

// Returns true if both processes access the shared resource at the same
// time, i.e. both are in the Reading or Writing state.
func (s SystemState) IsRaceCondition() bool {
	p1 := s.P1 == Reading || s.P1 == Writing
	p2 := s.P2 == Reading || s.P2 == Writing
	return p1 && p2
}

// Returns true if both processes are inside the critical section.
// This is the safety violation Peterson's algorithm must never allow.
func (s SystemState) IsMutualExclusionViolated() bool {
	return s.P1 == Critical && s.P2 == Critical
}

// Hash returns a hash of the state derived from the same six fields as
// equality, so that equal states always hash equal.
func (s SystemState) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%d/%d/%t/%t/%d", s.P1, s.P2, s.Counter, s.Flag1, s.Flag2, s.Turn)
	return h.Sum64()
}

// Label generates the multi-line description of the state used by the
// diagram exporters. If includePeterson is true the flag and turn variables
// are included as well.
func (s SystemState) Label(includePeterson bool) string {
	label := fmt.Sprintf("P1: %v\nP2: %v\nCounter: %v", s.P1, s.P2, s.Counter)
	if includePeterson {
		label += fmt.Sprintf("\nflag1=%v, flag2=%v\nturn=%v", s.Flag1, s.Flag2, s.Turn)
	}
	return label
}

func (s SystemState) String() string {
	return fmt.Sprintf("{P1: %v, P2: %v, Counter: %v, flags: (%v, %v), turn: %v}",
		s.P1, s.P2, s.Counter, s.Flag1, s.Flag2, s.Turn)
}
