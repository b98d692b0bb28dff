package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/guess/game"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 8)
	t.Cleanup(screen.Fini)
	return New(screen), screen
}

func typeLine(screen tcell.SimulationScreen, text string) {
	for _, r := range text {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
}

// rowText returns the printable content of row y with trailing blanks removed
func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestReadLine_Edits(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, '4', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '9', tcell.ModNone)
	screen.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	raw, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "42\n", raw)
}

func TestReadLine_Interrupted(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD} {
		term, screen := newSimTerminal(t)
		screen.InjectKey(key, 0, tcell.ModNone)

		_, err := term.ReadLine()
		assert.ErrorIs(t, err, ErrInterrupted)
	}
}

func TestLoop_OnTerminal(t *testing.T) {
	term, screen := newSimTerminal(t)
	typeLine(screen, "abc")
	typeLine(screen, "50")

	l := game.NewLoop(50, term, term, nil)
	require.NoError(t, l.Run())

	assert.Equal(t, game.StateTerminal, l.State())
	assert.Equal(t, "Guess a number:", rowText(screen, 0))
	assert.Equal(t, "> abc", rowText(screen, 1))
	assert.Equal(t, "Guess a number:", rowText(screen, 2))
	assert.Equal(t, "> 50", rowText(screen, 3))
	assert.Equal(t, "You guessed 50", rowText(screen, 4))
	assert.Equal(t, "You win!!", rowText(screen, 5))
	assert.Equal(t, "The secret was 50", rowText(screen, 6))
	assert.Equal(t, ">", rowText(screen, 7))
}

func TestLoop_TranscriptScrolls(t *testing.T) {
	term, screen := newSimTerminal(t)
	typeLine(screen, "1")
	typeLine(screen, "99")
	typeLine(screen, "7")

	l := game.NewLoop(7, term, term, nil)
	require.NoError(t, l.Run())

	// 13 transcript lines on a 7 row window keep only the newest
	assert.Equal(t, "You guessed 99", rowText(screen, 0))
	assert.Equal(t, "Too big!", rowText(screen, 1))
	assert.Equal(t, "You win!!", rowText(screen, 5))
	assert.Equal(t, "The secret was 7", rowText(screen, 6))
}

func TestWaitKey(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	term.WaitKey()
	assert.Equal(t, "Press any key to exit", rowText(screen, 0))
}
