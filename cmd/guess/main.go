// Command guess is a number guessing game: find the secret between 1 and 100.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/guess/core"
)

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() { core.HandleCrash(recover()) }()

	if err := newRootCommand(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "guess: %v\n", err)
		os.Exit(1)
	}
}
