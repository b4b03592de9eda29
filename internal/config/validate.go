package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// Bounds for a statistics window, in days.
const (
	MinWindowDays = 1
	MaxWindowDays = 3650
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// SoundFormats lists the file extensions accepted for ambient sound.
var SoundFormats = []string{".flac", ".mp3", ".ogg", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
// Timer lengths are not validated: out-of-range values are clamped when the
// timer is configured.
func (c *Config) Validate() error {
	if err := c.validateStats(); err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Sound.Ambient != "" {
		ext := strings.ToLower(filepath.Ext(c.Sound.Ambient))
		if !slices.Contains(SoundFormats, ext) {
			return errInvalidSoundFormat.Fmt(c.Sound.Ambient)
		}
	}

	return nil
}

func (c *Config) validateStats() error {
	if len(c.Stats.Windows) == 0 {
		return errNoWindows
	}

	for _, days := range c.Stats.Windows {
		if days < MinWindowDays || days > MaxWindowDays {
			return errInvalidWindow.Fmt(MinWindowDays, MaxWindowDays, days)
		}
	}

	return nil
}
