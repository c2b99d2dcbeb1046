package stackanim

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/constants"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/internal"
	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that decodes from strings such as "800ms" or "1.5s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the stack defaults that can be loaded from a TOML file:
//
//	timing = "800ms"
//	in_effect = "SlideLeftIn"
//	back_in_effect = "SlideRightIn"
//	log_level = "warn"
type Config struct {
	Timing       Duration      `toml:"timing"`         // Outgoing duration when a call gives none
	InEffect     effect.InName `toml:"in_effect"`      // Default in effect for AnimateTo
	BackInEffect effect.InName `toml:"back_in_effect"` // Default in effect for AnimateBack
	LogLevel     string        `toml:"log_level"`      // Level for the shared logger
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Timing:       Duration{constants.DefaultTiming},
		InEffect:     effect.SlideLeftInName,
		BackInEffect: effect.SlideRightInName,
		LogLevel:     "warn",
	}
}

// DecodeConfig parses TOML data on top of DefaultConfig.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	return finishConfig("", cfg, md)
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	return finishConfig(path, cfg, md)
}

func finishConfig(path string, cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, &ConfigError{Path: path, Field: strings.Join(keys, ", "), Err: errors.New("unknown key")}
	}

	if err := cfg.Validate(); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks durations, effect names and the log level.
func (c Config) Validate() error {
	if c.Timing.Duration < 0 {
		return &ConfigError{Field: "timing", Err: fmt.Errorf("must not be negative, got %s", c.Timing.Duration)}
	}
	if c.InEffect != "" && !c.InEffect.Valid() {
		return &ConfigError{Field: "in_effect", Err: fmt.Errorf("unknown effect %q", c.InEffect)}
	}
	if c.BackInEffect != "" && !c.BackInEffect.Valid() {
		return &ConfigError{Field: "back_in_effect", Err: fmt.Errorf("unknown effect %q", c.BackInEffect)}
	}
	if c.LogLevel != "" {
		if _, ok := internal.ParseLevel(c.LogLevel); !ok {
			return &ConfigError{Field: "log_level", Err: fmt.Errorf("unknown level %q", c.LogLevel)}
		}
	}
	return nil
}

// ApplyLogLevel sets the shared logger's level from LogLevel, if one is set.
func (c Config) ApplyLogLevel() {
	if level, ok := internal.ParseLevel(c.LogLevel); ok {
		internal.SetLogLevel(level)
	}
}

// Level returns the parsed LogLevel, or slog.LevelWarn when unset or invalid.
func (c Config) Level() slog.Level {
	if level, ok := internal.ParseLevel(c.LogLevel); ok {
		return level
	}
	return slog.LevelWarn
}

func (c Config) timing(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	if c.Timing.Duration > 0 {
		return c.Timing.Duration
	}
	return constants.DefaultTiming
}

func (c Config) inFallback() effect.InName {
	if c.InEffect.Valid() {
		return c.InEffect
	}
	return effect.SlideLeftInName
}

func (c Config) backFallback() effect.InName {
	if c.BackInEffect.Valid() {
		return c.BackInEffect
	}
	return effect.SlideRightInName
}
