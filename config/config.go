// Package config resolves game settings from command line flags and an
// optional configuration file.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/guess/logging"
)

const (
	// CfgConfigFile is the path of an optional TOML/YAML/JSON settings file.
	CfgConfigFile = "config"
	// CfgDebug enables debug logging into the rotating debug log.
	CfgDebug = "debug"
	// CfgLogFile is an explicit log file path.
	CfgLogFile = "log.file"
	// CfgLogLevel is the minimum log level.
	CfgLogLevel = "log.level"
	// CfgLogFormat is the log line format.
	CfgLogFormat = "log.format"
	// CfgSound enables audio cues.
	CfgSound = "sound"
	// CfgTUI selects the full-screen frontend.
	CfgTUI = "tui"
)

// Config is the resolved set of game settings
type Config struct {
	Debug     bool
	LogFile   string
	LogLevel  logging.Level
	LogFormat logging.Format
	Sound     bool
	TUI       bool
}

// NewFlagSet returns the flags understood by Load
func NewFlagSet() *pflag.FlagSet {
	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn

	fs := pflag.NewFlagSet("guess", pflag.ContinueOnError)
	fs.String(CfgConfigFile, "", "settings file (toml, yaml or json)")
	fs.Bool(CfgDebug, false, "write debug logs to logs/guess-debug.log")
	fs.String(CfgLogFile, "", "log file")
	fs.Var(&logLevel, CfgLogLevel, "log level")
	fs.Var(&logFmt, CfgLogFormat, "log format")
	fs.Bool(CfgSound, false, "play sound cues")
	fs.Bool(CfgTUI, false, "full-screen terminal frontend")
	return fs
}

// Load merges parsed flags with the settings file named by --config
// Flags set explicitly on the command line win over the file
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if path := v.GetString(CfgConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		Debug:   v.GetBool(CfgDebug),
		LogFile: v.GetString(CfgLogFile),
		Sound:   v.GetBool(CfgSound),
		TUI:     v.GetBool(CfgTUI),
	}
	if err := cfg.LogLevel.Set(v.GetString(CfgLogLevel)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.LogFormat.Set(v.GetString(CfgLogFormat)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// Debug only raises verbosity; an explicit level still applies
	if cfg.Debug && !fs.Changed(CfgLogLevel) && !v.InConfig(CfgLogLevel) {
		cfg.LogLevel = logging.LevelDebug
	}

	return cfg, nil
}
