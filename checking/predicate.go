package checking

import (
	"racevis/state"
)

// The mutual exclusion safety property.
//
// Holds for a state if at most one process is inside the critical section.
// Checking it over the Peterson machine is how the model demonstrates the
// correctness of the algorithm.
func MutualExclusion(s state.SystemState) bool {
	return !s.IsMutualExclusionViolated()
}

// RaceFree holds for a state if the two processes do not access the shared
// resource concurrently.
//
// Checking it over the race condition machine is expected to fail; the
// counterexample sequence ends at the first racing state.
func RaceFree(s state.SystemState) bool {
	return !s.IsRaceCondition()
}
