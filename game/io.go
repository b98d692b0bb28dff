package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/guess/secret"
)

// LineReader supplies one raw line of player input per call
// It blocks until a line is available; any error is fatal to the game
type LineReader interface {
	ReadLine() (string, error)
}

// Presenter renders prompts and feedback
type Presenter interface {
	Prompt()
	Guessed(guess uint32)
	TooSmall()
	TooBig()
	Win()
	Reveal(target secret.Target)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader reads newline-delimited input from r
// A final line without a newline is still delivered; the read after it fails
func NewLineReader(r io.Reader) LineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) ReadLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	case errors.Is(err, io.EOF):
		return "", io.ErrUnexpectedEOF
	default:
		return "", err
	}
}

// TextPresenter writes plain text lines
type TextPresenter struct {
	w io.Writer
}

// NewTextPresenter creates a Presenter writing to w, typically stdout
func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: w}
}

func (p *TextPresenter) Prompt() {
	fmt.Fprintln(p.w, "Guess a number:")
}

func (p *TextPresenter) Guessed(guess uint32) {
	fmt.Fprintf(p.w, "You guessed %d\n", guess)
}

func (p *TextPresenter) TooSmall() {
	fmt.Fprintln(p.w, "Too small!")
}

func (p *TextPresenter) TooBig() {
	fmt.Fprintln(p.w, "Too big!")
}

func (p *TextPresenter) Win() {
	fmt.Fprintln(p.w, "You win!!")
}

func (p *TextPresenter) Reveal(target secret.Target) {
	fmt.Fprintf(p.w, "The secret was %s\n", target)
}
