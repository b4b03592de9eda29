package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/studytimer/studytimer/internal/config"
	"github.com/studytimer/studytimer/internal/logging"
	"github.com/studytimer/studytimer/internal/osutil"
	"github.com/studytimer/studytimer/internal/pathutil"
	"github.com/studytimer/studytimer/internal/timeutil"
	"github.com/studytimer/studytimer/internal/ui"
	"github.com/studytimer/studytimer/stats"
	"github.com/studytimer/studytimer/store"
	"github.com/studytimer/studytimer/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envStudyNoColor   = "STUDYTIMER_NO_COLOR"
	configMetadataKey = "config"
	loggerMetadataKey = "logger"
)

// now is the time source for commands that depend on the current time.
var now = time.Now

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// appConfig returns the configuration loaded by beforeAction.
func appConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, ok := ctx.App.Metadata[configMetadataKey].(*config.Config)
	if !ok {
		return nil, errConfigNotLoaded
	}

	return cfg, nil
}

// openRecords opens the database and loads the saved records. The returned
// client must be closed by the caller.
func openRecords() (*store.Client, *store.Records, error) {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	records, err := store.OpenRecords(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return client, records, nil
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	t := timer.NewTimer(cfg, records, store.NewTheme(client))

	p := tea.NewProgram(t, tea.WithContext(ctx.Context))

	_, err = p.Run()

	return err
}

// recordsAction handles the records command and prints the saved sessions,
// newest first.
func recordsAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	var since time.Time

	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s, now())
		if err != nil {
			return errInvalidSince.Fmt(s).Wrap(err)
		}
	}

	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	rows := collectRows(records, since, ctx.Int("limit"))

	if ctx.Bool("json") {
		return printRowsJSON(config.Stdout, rows)
	}

	listRecords(config.Stdout, rows, cfg.Display.TwentyFourHour)

	return nil
}

// deleteAction handles the delete command which removes sessions by ID.
func deleteAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	ids, err := parseIDs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	confirm := confirmDelete
	if ctx.Bool("yes") {
		confirm = nil
	}

	n, err := deleteRecords(
		config.Stdout,
		records,
		ids,
		cfg.Display.TwentyFourHour,
		confirm,
	)
	if err != nil {
		return err
	}

	if n > 0 {
		pterm.Success.Printfln("Deleted %d record(s)", n)
	}

	return nil
}

// importAction handles the import command.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errImportPath
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	n, err := records.Import(f)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Imported %d record(s) from %s", n, path)

	return nil
}

// exportAction handles the export command. Records are written to the file
// named by the first argument, or to standard output.
func exportAction(ctx *cli.Context) error {
	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	path := ctx.Args().First()
	if path == "" {
		return records.Export(config.Stdout)
	}

	f, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return err
	}

	err = records.Export(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Exported %d record(s) to %s", records.Len(), path)

	return nil
}

// statsAction reports the average study time for each window.
func statsAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	windows := ctx.IntSlice("window")
	if len(windows) == 0 {
		windows = cfg.Stats.Windows
	}

	for _, w := range windows {
		if w < config.MinWindowDays || w > config.MaxWindowDays {
			return errInvalidWindow.Fmt(w, config.MinWindowDays, config.MaxWindowDays)
		}
	}

	client, records, err := openRecords()
	if err != nil {
		return err
	}

	defer client.Close()

	report := stats.NewReport(records.All(), windows, now())

	if ctx.Bool("json") {
		b, err := report.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	return report.Render(config.Stdout)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}

	return "light"
}

// themeAction prints the saved theme or changes it.
func themeAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer client.Close()

	theme := store.NewTheme(client)

	arg := strings.ToLower(ctx.Args().First())

	var dark bool

	switch arg {
	case "":
		fmt.Fprintln(config.Stdout, themeName(theme.Dark(cfg.Display.DarkTheme)))

		return nil
	case "dark", "light":
		dark = arg == "dark"
		err = theme.SetDark(dark)
	case "toggle":
		dark, err = theme.Toggle(cfg.Display.DarkTheme)
	default:
		return errInvalidTheme.Fmt(arg)
	}

	if err != nil {
		return err
	}

	pterm.Success.Printfln("Theme set to %s", themeName(dark))

	return nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if STUDYTIMER_NO_COLOR is set
	if _, exists := os.LookupEnv(envStudyNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	closer, err := logging.Init(
		pathutil.LogFilePath(),
		logging.ParseLevel(cfg.Log.Level),
	)
	if err != nil {
		return err
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[configMetadataKey] = cfg
	ctx.App.Metadata[loggerMetadataKey] = closer

	slog.Debug("starting studytimer", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting studytimer")

	closer, ok := ctx.App.Metadata[loggerMetadataKey].(io.Closer)
	if !ok {
		return nil
	}

	delete(ctx.App.Metadata, loggerMetadataKey)

	return closer.Close()
}
