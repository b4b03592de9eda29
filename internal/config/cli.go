package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Pointer fields
// are nil when the corresponding flag was not set.
type CLIOptions struct {
	Hours         *int
	Minutes       *int
	Seconds       *int
	Label         string
	SessionCmd    string
	Ambient       string
	DisableNotify bool
	NoAlarm       bool
	NoColor       bool
}

func intFlag(ctx *cli.Context, name string) *int {
	if !ctx.IsSet(name) {
		return nil
	}

	v := ctx.Int(name)

	return &v
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Hours:         intFlag(ctx, "hours"),
			Minutes:       intFlag(ctx, "minutes"),
			Seconds:       intFlag(ctx, "seconds"),
			Label:         ctx.String("label"),
			SessionCmd:    ctx.String("session-cmd"),
			Ambient:       ctx.String("ambient"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoAlarm:       ctx.Bool("no-alarm"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. A countdown length given
// on the command line replaces the configured one entirely, so that
// "--minutes 5" means five minutes even when the file configures an hour.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Hours != nil || opts.Minutes != nil || opts.Seconds != nil {
		c.Timer = TimerConfig{}

		if opts.Hours != nil {
			c.Timer.Hours = *opts.Hours
		}

		if opts.Minutes != nil {
			c.Timer.Minutes = *opts.Minutes
		}

		if opts.Seconds != nil {
			c.Timer.Seconds = *opts.Seconds
		}
	}

	c.CLI.Label = strings.TrimSpace(opts.Label)
	c.CLI.NoColor = opts.NoColor

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoAlarm {
		c.Sound.Alarm = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Ambient != "" {
		c.Sound.Ambient = opts.Ambient
	}
}
