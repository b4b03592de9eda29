package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/studytimer/studytimer/internal/config"
	"github.com/studytimer/studytimer/internal/models"
	"github.com/studytimer/studytimer/internal/timeutil"
)

const notifyTitle = "Study session complete"

// Alerts announces a completed countdown with a desktop notification, an
// alarm tone and an optional user command.
type Alerts struct {
	notify func(title, msg, icon string) error
	play   func() error
	run    func(name string, args ...string) error
	// Cmd is run after every completed session.
	Cmd    string
	Notify bool
	Alarm  bool
}

// NewAlerts returns the alerts enabled in cfg.
func NewAlerts(cfg *config.Config) *Alerts {
	return &Alerts{
		Notify: cfg.Notifications.Enabled,
		Alarm:  cfg.Sound.Alarm,
		Cmd:    cfg.Settings.Cmd,
		notify: func(title, msg, icon string) error {
			return beeep.Notify(title, msg, icon)
		},
		play: playAlarm,
		run:  runCmd,
	}
}

func runCmd(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// notification returns the notification body for c.
func notification(c Completion) string {
	name := c.Label
	if name == "" {
		name = models.DefaultName
	}

	return fmt.Sprintf("%s: %s", name, timeutil.FormatDuration(c.Duration))
}

// runSessionCmd executes the configured command, if any.
func (a *Alerts) runSessionCmd() error {
	if a.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.Cmd)
	if err != nil {
		return errSessionCmd.Fmt(a.Cmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(cmdSlice[0], cmdSlice[1:]...)
}

// Fire runs every enabled alert for c and returns their combined errors.
// The alarm blocks until it has finished playing.
func (a *Alerts) Fire(c Completion) error {
	var errs []error

	if a.Notify {
		// icon is empty if the file is not found
		icon, _ := xdg.SearchDataFile(filepath.Join("studytimer", "icon.png"))

		err := a.notify(notifyTitle, notification(c), icon)
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}
	}

	err := a.runSessionCmd()
	if err != nil {
		errs = append(errs, err)
	}

	if a.Alarm {
		err = a.play()
		if err != nil {
			errs = append(errs, err)
		}
	}

	err = errors.Join(errs...)
	if err != nil {
		slog.Warn("completion alert failed", slog.Any("error", err))
	}

	return err
}
