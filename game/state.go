// Package game implements the interactive guess loop.
//
// The loop is a small state machine: it prompts and reads a line, parses it
// into a guess, compares the guess against the target and reports the
// outcome, until the guess matches. Malformed lines are discarded without a
// message; a failure to read input ends the game with ErrReadInput.
package game

// State identifies a node of the guess loop state machine
type State int

const (
	StateAwaitingInput State = iota
	StateParsing
	StateComparing
	StateTerminal
)

var stateNames = [...]string{
	StateAwaitingInput: "awaiting_input",
	StateParsing:       "parsing",
	StateComparing:     "comparing",
	StateTerminal:      "terminal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
