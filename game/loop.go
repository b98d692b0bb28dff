package game

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/guess/logging"
	"github.com/lixenwraith/guess/secret"
	"github.com/lixenwraith/guess/status"
)

// ErrReadInput marks a failure to obtain a line from the player
var ErrReadInput = errors.New("game: failed to read line")

var logger = logging.GetLogger("game")

// Loop drives read, parse, compare and report until the target is guessed
type Loop struct {
	target secret.Target
	in     LineReader
	out    Presenter
	state  State

	// Per-iteration values, replaced on every pass through the machine
	raw   string
	guess uint32

	guesses   *atomic.Int64
	rejected  *atomic.Int64
	tooSmall  *atomic.Int64
	tooBig    *atomic.Int64
	stateName *status.Label
}

// NewLoop creates a loop in StateAwaitingInput
// A nil registry gets a private one
func NewLoop(target secret.Target, in LineReader, out Presenter, reg *status.Registry) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	l := &Loop{
		target:    target,
		in:        in,
		out:       out,
		guesses:   reg.Ints.Get(status.KeyGuesses),
		rejected:  reg.Ints.Get(status.KeyRejected),
		tooSmall:  reg.Ints.Get(status.KeyTooSmall),
		tooBig:    reg.Ints.Get(status.KeyTooBig),
		stateName: reg.Labels.Get(status.KeyState),
	}
	l.setState(StateAwaitingInput)
	return l
}

// State returns the current machine state
func (l *Loop) State() State {
	return l.state
}

// Target returns the value being guessed
func (l *Loop) Target() secret.Target {
	return l.target
}

// Run steps the machine until it reaches StateTerminal or input fails
func (l *Loop) Run() error {
	for l.state != StateTerminal {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs exactly one transition
func (l *Loop) Step() error {
	switch l.state {
	case StateAwaitingInput:
		l.out.Prompt()
		raw, err := l.in.ReadLine()
		if err != nil {
			logger.Error("input read failed", "err", err)
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		l.raw = raw
		l.setState(StateParsing)

	case StateParsing:
		guess, ok := ParseGuess(l.raw)
		l.raw = ""
		if !ok {
			l.rejected.Add(1)
			logger.Debug("discarded input")
			l.setState(StateAwaitingInput)
			return nil
		}
		l.guess = guess
		l.guesses.Add(1)
		l.setState(StateComparing)

	case StateComparing:
		l.out.Guessed(l.guess)
		switch Compare(l.guess, l.target) {
		case Less:
			l.tooSmall.Add(1)
			l.out.TooSmall()
			l.setState(StateAwaitingInput)
		case Greater:
			l.tooBig.Add(1)
			l.out.TooBig()
			l.setState(StateAwaitingInput)
		case Equal:
			l.out.Win()
			l.setState(StateTerminal)
			l.out.Reveal(l.target)
		}

	case StateTerminal:
	}
	return nil
}

func (l *Loop) setState(s State) {
	l.state = s
	if prev := l.stateName.Swap(s.String()); prev != s.String() {
		logger.Debug("transition", "from", prev, "to", s)
	}
}
