// Package logging implements structured, leveled logging for the game.
//
// Loggers may be created at package level before Initialize is called;
// until then everything they log is discarded, which keeps the player's
// terminal free of diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	backend = logBackend{
		baseLogger:   log.NewNopLogger(),
		defaultLevel: LevelWarn,
	}

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

// String returns the string representation of a Format.
func (f *Format) String() string {
	switch *f {
	case FmtLogfmt:
		return "logfmt"
	case FmtJSON:
		return "JSON"
	default:
		panic("logging: unsupported format")
	}
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	switch strings.ToUpper(s) {
	case "LOGFMT":
		*f = FmtLogfmt
	case "JSON":
		*f = FmtJSON
	default:
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}
	return nil
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[logfmt,JSON]"
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

func (l Level) toOption() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelInfo:
		return level.AllowInfo()
	case LevelWarn:
		return level.AllowWarn()
	default:
		return level.AllowError()
	}
}

// String returns the string representation of a Level.
func (l *Level) String() string {
	switch *l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		panic("logging: unsupported log level")
	}
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	switch strings.ToUpper(s) {
	case "DEBUG":
		*l = LevelDebug
	case "INFO":
		*l = LevelInfo
	case "WARN":
		*l = LevelWarn
	case "ERROR":
		*l = LevelError
	default:
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}
	return nil
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	return "[DEBUG,INFO,WARN,ERROR]"
}

// Logger is a logger instance.
type Logger struct {
	logger log.Logger
	module string
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...any) {
	_ = level.Debug(l.logger).Log(append([]any{"msg", msg}, keyvals...)...)
}

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...any) {
	_ = level.Info(l.logger).Log(append([]any{"msg", msg}, keyvals...)...)
}

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...any) {
	_ = level.Warn(l.logger).Log(append([]any{"msg", msg}, keyvals...)...)
}

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...any) {
	_ = level.Error(l.logger).Log(append([]any{"msg", msg}, keyvals...)...)
}

// With returns a clone of the logger with the provided key/value pairs
// added via log.With.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{
		logger: log.With(l.logger, keyvals...),
		module: l.module,
	}
}

// GetLevel returns the current global log level.
func GetLevel() Level {
	backend.Lock()
	defer backend.Unlock()
	return backend.defaultLevel
}

// GetLogger creates a new logger instance with the specified module.
//
// This may be called from any point, including before Initialize is
// called, allowing for the construction of a package level Logger.
func GetLogger(module string) *Logger {
	return backend.getLogger(module)
}

// Initialize initializes the logging backend to write to the provided
// Writer with the given format and level. If the Writer is nil, all log
// output will be silently discarded.
func Initialize(w io.Writer, format Format, lvl Level) error {
	backend.Lock()
	defer backend.Unlock()

	if backend.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	logger, err := newBaseLogger(w, format, lvl)
	if err != nil {
		return err
	}

	backend.baseLogger = logger
	backend.defaultLevel = lvl
	backend.initialized = true

	// Swap all the early loggers to the initialized backend.
	for _, sl := range backend.earlyLoggers {
		sl.Swap(backend.baseLogger)
	}
	backend.earlyLoggers = nil

	return nil
}

func newBaseLogger(w io.Writer, format Format, lvl Level) (log.Logger, error) {
	if w == nil {
		return log.NewNopLogger(), nil
	}

	var logger log.Logger
	w = log.NewSyncWriter(w)
	switch format {
	case FmtLogfmt:
		logger = log.NewLogfmtLogger(w)
	case FmtJSON:
		logger = log.NewJSONLogger(w)
	default:
		return nil, fmt.Errorf("logging: unsupported log format: %v", format)
	}

	logger = level.NewFilter(logger, lvl.toOption())
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

type logBackend struct {
	sync.Mutex

	baseLogger   log.Logger
	earlyLoggers []*log.SwapLogger
	defaultLevel Level

	initialized bool
}

func (b *logBackend) getLogger(module string) *Logger {
	b.Lock()
	defer b.Unlock()

	logger := b.baseLogger
	if !b.initialized {
		sl := &log.SwapLogger{}
		b.earlyLoggers = append(b.earlyLoggers, sl)
		logger = sl
	}

	var keyvals []any
	if module != "" {
		keyvals = append(keyvals, "module", module)
	}
	return &Logger{
		logger: log.WithPrefix(logger, keyvals...),
		module: module,
	}
}
