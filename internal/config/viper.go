package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/studytimer/studytimer/internal/osutil"
)

const (
	keyTimerHours           = "timer.hours"
	keyTimerMinutes         = "timer.minutes"
	keyTimerSeconds         = "timer.seconds"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyAlarm                = "sound.alarm"
	keyAmbient              = "sound.ambient"
	keySessionCmd           = "settings.cmd"
	keyStatsWindows         = "stats.windows"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file populated with the defaults is written when none
// exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTimerHours, 0)
	v.SetDefault(keyTimerMinutes, 25)
	v.SetDefault(keyTimerSeconds, 0)
	v.SetDefault(keyDarkTheme, false)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyAlarm, true)
	v.SetDefault(keyAmbient, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyStatsWindows, []int{1, 7, 30})
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
