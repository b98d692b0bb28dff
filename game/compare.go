package game

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/guess/secret"
)

// Ordering is the result of a three-way comparison
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "invalid"
}

// Compare orders a guess relative to the target
func Compare(guess uint32, target secret.Target) Ordering {
	switch t := uint32(target); {
	case guess < t:
		return Less
	case guess > t:
		return Greater
	default:
		return Equal
	}
}

// ParseGuess interprets one raw input line as an unsigned base-10 integer
// Surrounding whitespace is ignored and a single leading '+' is allowed;
// anything else that is not a digit, or a value overflowing uint32, is rejected
func ParseGuess(raw string) (uint32, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
