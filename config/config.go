// Package config resolves runtime settings from defaults, environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/lixenwraith/glyph-rain/engine"
)

// Config holds every user-facing setting
// Seed 0 means a fresh random seed per session
type Config struct {
	DictPath  string        `env:"GLYPHRAIN_DICT"`
	LogPath   string        `env:"GLYPHRAIN_LOG"`
	JournalDB string        `env:"GLYPHRAIN_JOURNAL_DB"`
	MinLen    int           `env:"GLYPHRAIN_MIN_LEN"`
	MaxLen    int           `env:"GLYPHRAIN_MAX_LEN"`
	Target    int           `env:"GLYPHRAIN_TARGET"`
	Delay     time.Duration `env:"GLYPHRAIN_DELAY"`
	Seed      int64         `env:"GLYPHRAIN_SEED"`
	Mute      bool          `env:"GLYPHRAIN_MUTE"`
	Debug     bool          `env:"GLYPHRAIN_DEBUG"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		DictPath: constants.DefaultDictFile,
		LogPath:  constants.DefaultJournalFile,
		MinLen:   constants.MinWordLen,
		MaxLen:   constants.MaxWordLen,
		Target:   constants.TargetCount,
		Delay:    constants.InitialDelay,
	}
}

// ParseEnv overlays environment variables; unset variables keep the current value
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves defaults, then environment, then command-line args, and validates
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&cfg.DictPath, "dict", cfg.DictPath, "Dictionary file, one word per line")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Found-word journal file")
	fs.StringVar(&cfg.JournalDB, "journal-db", cfg.JournalDB, "Optional SQLite journal database")
	fs.IntVar(&cfg.MinLen, "min-len", cfg.MinLen, "Minimum word length in characters")
	fs.IntVar(&cfg.MaxLen, "max-len", cfg.MaxLen, "Maximum word length in characters")
	fs.IntVar(&cfg.Target, "target", cfg.Target, "Distinct words to find before the session ends")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Initial per-tick delay")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a fresh one")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable the audio chime, ring the terminal bell instead")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write diagnostics to logs/")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.DictPath == "" {
		errs = append(errs, errors.New("dictionary path is empty"))
	}
	if c.MinLen < 1 {
		errs = append(errs, fmt.Errorf("min-len %d must be at least 1", c.MinLen))
	}
	if c.MaxLen < c.MinLen {
		errs = append(errs, fmt.Errorf("max-len %d is below min-len %d", c.MaxLen, c.MinLen))
	}
	if c.Target < 1 {
		errs = append(errs, fmt.Errorf("target %d must be at least 1", c.Target))
	}
	if c.Delay < constants.MinDelay {
		errs = append(errs, fmt.Errorf("delay %v is below the %v floor", c.Delay, constants.MinDelay))
	}
	return errors.Join(errs...)
}

// ToEngine builds the scheduler configuration for a loaded word list
func (c Config) ToEngine(words []string) engine.Config {
	ec := engine.DefaultConfig(words)
	ec.TargetCount = c.Target
	ec.InitialDelay = c.Delay
	return ec
}
