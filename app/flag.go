package app

import "github.com/urfave/cli/v2"

var (
	hoursFlag = &cli.IntFlag{
		Name:    "hours",
		Aliases: []string{"H"},
		Usage:   "Hours in the countdown (0-23)",
	}

	minutesFlag = &cli.IntFlag{
		Name:    "minutes",
		Aliases: []string{"m"},
		Usage:   "Minutes in the countdown (0-59, default: 25)",
	}

	secondsFlag = &cli.IntFlag{
		Name:    "seconds",
		Aliases: []string{"s"},
		Usage:   "Seconds in the countdown (0-59)",
	}

	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "What you are studying. Sessions without a label are saved as 'Unnamed Session'",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	noAlarmFlag = &cli.BoolFlag{
		Name:  "no-alarm",
		Usage: "Do not play the alarm when a session is completed",
	}

	ambientFlag = &cli.StringFlag{
		Name:      "ambient",
		Usage:     "Loop an audio file (.flac, .mp3, .ogg, or .wav) while the timer runs",
		TakesFile: true,
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list sessions started after this time (e.g. '3 days ago', 'last monday', '2024-05-01')",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of sessions to list (0 lists all)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}

	windowFlag = &cli.IntSliceFlag{
		Name:    "window",
		Aliases: []string{"w"},
		Usage:   "Trailing window in days to average over. Repeat for several windows (default: 1, 7, 30)",
	}
)
