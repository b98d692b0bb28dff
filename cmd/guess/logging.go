package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/guess/config"
)

const (
	logDir      = "logs"
	logFileName = "guess-debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// openLog opens the configured log destination
// Returns nil when logging is disabled; --debug without --log.file uses the rotating debug log
func openLog(cfg *config.Config) (*os.File, error) {
	path := cfg.LogFile
	if path == "" {
		if !cfg.Debug {
			return nil, nil
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		path = filepath.Join(logDir, logFileName)
		if err := rotateLog(path); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// rotateLog moves path aside with a timestamp once it exceeds maxLogSize
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
