// Package tui is a full-screen tcell frontend for the guess loop.
//
// A Terminal is both the loop's LineReader, editing key events into a line,
// and its Presenter, keeping a colored transcript above the input row.
package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/guess/secret"
)

var (
	// ErrInterrupted is returned by ReadLine when the player quits
	ErrInterrupted = errors.New("tui: interrupted")
	// ErrClosed is returned by ReadLine once the screen is finalized
	ErrClosed = errors.New("tui: screen closed")
)

const inputPrefix = "> "

var (
	styleText     = tcell.StyleDefault
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTooSmall = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleTooBig   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleWin      = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	styleInput    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

type line struct {
	text  string
	style tcell.Style
}

// Terminal renders the game onto a tcell.Screen
type Terminal struct {
	screen     tcell.Screen
	transcript []line
	input      []rune
}

// Open initializes the controlling terminal
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen), nil
}

// New wraps an already initialized screen
func New(screen tcell.Screen) *Terminal {
	screen.SetStyle(styleText)
	screen.HideCursor()
	return &Terminal{screen: screen}
}

// Screen exposes the underlying screen for crash cleanup
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// ReadLine collects key presses until Enter
// Esc, Ctrl-C and Ctrl-D abort with ErrInterrupted
func (t *Terminal) ReadLine() (string, error) {
	t.draw()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				raw := string(t.input)
				t.input = t.input[:0]
				t.add(inputPrefix+raw, styleInput)
				return raw + "\n", nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(t.input); n > 0 {
					t.input = t.input[:n-1]
				}
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", ErrInterrupted
			case tcell.KeyRune:
				t.input = append(t.input, ev.Rune())
			}
			t.draw()
		}
	}
}

// WaitKey blocks until any key is pressed or the screen closes
func (t *Terminal) WaitKey() {
	t.add("Press any key to exit", stylePrompt)
	t.draw()
	for {
		switch t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		}
	}
}

func (t *Terminal) Prompt() {
	t.add("Guess a number:", stylePrompt)
}

func (t *Terminal) Guessed(guess uint32) {
	t.add(fmt.Sprintf("You guessed %d", guess), styleText)
}

func (t *Terminal) TooSmall() {
	t.add("Too small!", styleTooSmall)
}

func (t *Terminal) TooBig() {
	t.add("Too big!", styleTooBig)
}

func (t *Terminal) Win() {
	t.add("You win!!", styleWin)
}

func (t *Terminal) Reveal(target secret.Target) {
	t.add("The secret was "+target.String(), styleWin)
	t.draw()
}

func (t *Terminal) add(text string, style tcell.Style) {
	t.transcript = append(t.transcript, line{text: text, style: style})
}

// draw renders the tail of the transcript with the input row at the bottom
func (t *Terminal) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	if h <= 0 || w <= 0 {
		return
	}

	rows := h - 1
	start := 0
	if len(t.transcript) > rows {
		start = len(t.transcript) - rows
	}
	for y, l := range t.transcript[start:] {
		drawText(t.screen, 0, y, w, l.text, l.style)
	}

	prompt := inputPrefix + string(t.input)
	drawText(t.screen, 0, h-1, w, prompt, styleInput)
	if x := len([]rune(prompt)); x < w {
		t.screen.ShowCursor(x, h-1)
	}
	t.screen.Show()
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
