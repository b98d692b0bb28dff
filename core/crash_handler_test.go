package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = os.Stderr
		exit = os.Exit
		RegisterScreen(nil)
	})
	return &buf, &code
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)
	assert.Empty(t, buf.String())
	assert.Equal(t, -1, *code)
}

func TestHandleCrash_ReportsAndExits(t *testing.T) {
	buf, code := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	RegisterScreen(screen)

	func() {
		defer func() { HandleCrash(recover()) }()
		panic("loop exploded")
	}()

	assert.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), "CRASH DETECTED: loop exploded")
	assert.Contains(t, buf.String(), "Stack Trace:")

	mu.Lock()
	defer mu.Unlock()
	assert.Nil(t, crashScreen, "screen is released after cleanup")
}
