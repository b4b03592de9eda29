// Package app defines the studytimer command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/studytimer/studytimer/internal/config"
)

// Get retrieves the studytimer app instance.
func Get() *cli.App {
	cli.AppHelpTemplate = helpText()

	studyApp := &cli.App{
		Name: "studytimer",
		Usage: `
		studytimer is a countdown timer for study sessions. Completed sessions
		are saved with their label and notes, and your average daily, weekly
		and monthly study time is reported from them.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "records",
				Aliases: []string{"list"},
				Usage:   "List completed sessions, newest first",
				Flags: []cli.Flag{
					sinceFlag,
					limitFlag,
					jsonFlag,
				},
				Action: recordsAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete sessions by the IDs shown in 'records'",
				ArgsUsage: "ID...",
				Flags: []cli.Flag{
					yesFlag,
				},
				Action: deleteAction,
			},
			{
				Name:      "import",
				Usage:     "Import sessions from a JSON export",
				ArgsUsage: "FILE",
				Action:    importAction,
			},
			{
				Name:      "export",
				Usage:     "Export all sessions as JSON to FILE or standard output",
				ArgsUsage: "[FILE]",
				Action:    exportAction,
			},
			{
				Name:  "stats",
				Usage: "Report average study time over trailing windows",
				Flags: []cli.Flag{
					windowFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:      "theme",
				Usage:     "Print or change the timer theme",
				ArgsUsage: "[dark|light|toggle]",
				Action:    themeAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			hoursFlag,
			minutesFlag,
			secondsFlag,
			labelFlag,
			disableNotificationFlag,
			noAlarmFlag,
			ambientFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return studyApp
}
