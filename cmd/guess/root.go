package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/guess/audio"
	"github.com/lixenwraith/guess/config"
	"github.com/lixenwraith/guess/core"
	"github.com/lixenwraith/guess/game"
	"github.com/lixenwraith/guess/logging"
	"github.com/lixenwraith/guess/secret"
	"github.com/lixenwraith/guess/status"
	"github.com/lixenwraith/guess/tui"
)

// Upper bound on waiting for the win cue before exiting
const soundFlushTimeout = time.Second

var logger = logging.GetLogger("cmd")

// app carries the process dependencies a session needs
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	newSource   func() (secret.Source, error)
	initLogging func(w io.Writer, cfg *config.Config) error
}

func newApp() *app {
	return &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		newSource: func() (secret.Source, error) {
			rng, err := secret.NewSeeded()
			if err != nil {
				return nil, err
			}
			return rng, nil
		},
		initLogging: func(w io.Writer, cfg *config.Config) error {
			return logging.Initialize(w, cfg.LogFormat, cfg.LogLevel)
		},
	}
}

func newRootCommand(a *app) *cobra.Command {
	flags := config.NewFlagSet()

	cmd := &cobra.Command{
		Use:           "guess",
		Short:         "Guess the secret number between 1 and 100",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}

			logFile, err := openLog(cfg)
			if err != nil {
				return err
			}
			var w io.Writer
			if logFile != nil {
				defer logFile.Close()
				w = logFile
			}
			if err := a.initLogging(w, cfg); err != nil {
				return err
			}

			return a.play(cfg)
		},
	}
	cmd.Flags().AddFlagSet(flags)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

// play runs one game to completion
func (a *app) play(cfg *config.Config) error {
	src, err := a.newSource()
	if err != nil {
		return fmt.Errorf("generate target: %w", err)
	}
	target := secret.New(src)
	logger.Debug("target generated", "target", target)

	var (
		in   game.LineReader
		out  game.Presenter
		term *tui.Terminal
	)
	if cfg.TUI {
		if term, err = tui.Open(); err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		core.RegisterScreen(term.Screen())
		defer func() {
			core.RegisterScreen(nil)
			term.Close()
		}()
		in, out = term, term
	} else {
		in = game.NewLineReader(a.stdin)
		out = game.NewTextPresenter(a.stdout)
	}

	var sound *audio.SoundManager
	if cfg.Sound {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
			fmt.Fprintf(a.stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
			sound = nil
		} else {
			defer sound.Cleanup()
			out = audio.NewPresenter(out, sound)
		}
	}

	reg := status.NewRegistry()
	err = game.NewLoop(target, in, out, reg).Run()
	logger.Info("session finished", reg.Snapshot()...)
	if err != nil {
		return err
	}

	if sound != nil {
		sound.Flush(soundFlushTimeout)
	}
	if term != nil {
		term.WaitKey()
	}
	return nil
}
