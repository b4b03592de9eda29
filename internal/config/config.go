// Package config loads the studytimer settings from the configuration file
// and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Stats         StatsConfig        `mapstructure:"stats"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig is the countdown length the timer starts with.
	TimerConfig struct {
		Hours   int `mapstructure:"hours"`
		Minutes int `mapstructure:"minutes"`
		Seconds int `mapstructure:"seconds"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SoundConfig controls the alarm played when a countdown completes and
	// the ambient sound looped while it runs.
	SoundConfig struct {
		// Ambient is the path to a .flac, .mp3, .ogg, or .wav file.
		Ambient string `mapstructure:"ambient"`
		Alarm   bool   `mapstructure:"alarm"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		// Cmd is executed after each completed session.
		Cmd string `mapstructure:"cmd"`
	}

	// StatsConfig lists the trailing windows, in days, used for averages.
	StatsConfig struct {
		Windows []int `mapstructure:"windows"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		Label   string
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies the options in order, and validates
// the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
