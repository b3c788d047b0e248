package checking

import (
	"racevis/machine"
)

// The Checker verifies that properties hold for a scenario state machine.
type Checker interface {
	// Verify that the configured properties hold for every state of the machine
	Check(m machine.Machine) CheckerResponse
}

// CheckerResponse is a response returned by a Checker
//
// Contains the result of checking the machine.
type CheckerResponse interface {
	// Create a response.
	//
	// Returns a boolean that is true if all properties hold, false otherwise.
	// Returns a string describing the response.
	// If a property is violated the description includes which property was
	// violated and the prefix of the state sequence ending at the violating
	// state.
	Response() (bool, string)
}
