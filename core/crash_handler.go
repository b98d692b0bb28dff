// Package core holds process-wide crash recovery.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	mu          sync.Mutex
	crashScreen tcell.Screen

	// Replaced in tests
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// RegisterScreen makes HandleCrash restore s before reporting, nil unregisters
func RegisterScreen(s tcell.Screen) {
	mu.Lock()
	crashScreen = s
	mu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
// Intended as: defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	mu.Lock()
	s := crashScreen
	crashScreen = nil
	mu.Unlock()

	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}
