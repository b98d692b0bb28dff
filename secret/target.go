// Package secret generates the number the player has to guess.
package secret

import "strconv"

// Inclusive bounds of every generated Target
const (
	Min = 1
	Max = 100
)

// Target is the secret value, fixed for the lifetime of a game
type Target uint32

// New draws a Target uniformly from [Min, Max]
func New(src Source) Target {
	return Target(Min + src.Intn(Max-Min+1))
}

// Pin returns a Source that makes New yield t, for tests and replays
func Pin(t Target) Source {
	return Fixed(int(t) - Min)
}

func (t Target) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
