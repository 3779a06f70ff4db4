package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/desertwitch/fichier"
	"github.com/desertwitch/fichier/internal/configuration"
	"github.com/desertwitch/fichier/internal/ui"
	"github.com/lmittmann/tint"
)

// App runs the commands of the command-line front-end.
type App struct {
	fichier    *fichier.Fichier
	config     *configuration.AppConfiguration
	logManager *SlogManager

	stdin  io.Reader
	stdout io.Writer

	uiEnabled bool
	uiRunning atomic.Bool
}

// NewApp returns a pointer to a new [App].
func NewApp(f *fichier.Fichier,
	config *configuration.AppConfiguration,
	logManager *SlogManager,
	stdin io.Reader,
	stdout io.Writer,
	uiEnabled bool,
) *App {
	return &App{
		fichier:    f,
		config:     config,
		logManager: logManager,
		stdin:      stdin,
		stdout:     stdout,
		uiEnabled:  uiEnabled,
	}
}

// Launch runs the command named by the first argument with the remaining
// arguments.
func (app *App) Launch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("(app) %w: command", ErrMissingArgument)
	}

	var err error

	switch command, args := args[0], args[1:]; command {
	case "mkdir":
		err = app.Mkdir(args)
	case "write":
		err = app.Write(args)
	case "publish":
		err = app.Publish(args)
	case "cat":
		err = app.Cat(args)
	case "ls":
		err = app.List(args)
	case "pwd":
		err = app.println(app.fichier.GetCurrentDirectory())
	case "docs":
		err = app.Docs()
	case "find":
		err = app.Find(ctx, args)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}

// Mkdir creates a directory with all missing parents.
func (app *App) Mkdir(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: mkdir DIR", ErrMissingArgument)
	}

	if err := app.fichier.CreateDirectory(args[0]); err != nil {
		return err //nolint:wrapcheck
	}

	return app.println(args[0])
}

// Write writes the given text, or standard input if no text is given, to a
// file.
func (app *App) Write(args []string) error {
	if len(args) < 1 || len(args) > 2 { //nolint:mnd
		return fmt.Errorf("%w: write FILE [TEXT]", ErrMissingArgument)
	}

	var content string
	if len(args) == 2 { //nolint:mnd
		content = args[1]
	} else {
		stdin, err := io.ReadAll(app.stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		content = string(stdin)
	}

	path, err := app.fichier.Write(content, args[0])
	if err != nil {
		return err //nolint:wrapcheck
	}

	return app.println(path)
}

// Publish writes standard input to the index file of a titled directory.
func (app *App) Publish(args []string) error {
	flags := flag.NewFlagSet("publish", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	title := flags.String("title", "", "title of the content")
	output := flags.String("output", app.config.Output, "directory to publish into")
	translit := flags.Bool("translit", app.config.Transliterate, "transliterate the title")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse publish flags: %w", err)
	}

	if *title == "" {
		return fmt.Errorf("%w: publish -title TITLE", ErrMissingArgument)
	}

	if *output == "" {
		*output = app.fichier.GetCurrentDirectory()
	}

	stdin, err := io.ReadAll(app.stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	path, err := app.fichier.WriteTitled(string(stdin), *title, *output, *translit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return app.println(path)
}

// Cat prints the content of a file.
func (app *App) Cat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: cat FILE", ErrMissingArgument)
	}

	content, err := app.fichier.ReadFile(args[0])
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := io.WriteString(app.stdout, content); err != nil {
		return fmt.Errorf("failed to print: %w", err)
	}

	return nil
}

// List prints the entries of a directory, or of the working directory if none
// is given.
func (app *App) List(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: ls [DIR]", ErrMissingArgument)
	}

	dir := app.fichier.GetCurrentDirectory()
	if len(args) == 1 {
		dir = args[0]
	}

	entries, err := app.fichier.ReadDirectory(dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return app.println(entries...)
}

// Docs prints the documents directory of the current user.
func (app *App) Docs() error {
	docs, err := app.fichier.GetDocumentsDirectory()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return app.println(docs)
}

// Find prints all files below the given directories, or below the working
// directory if none are given. With -match, only files whose name (or path,
// for patterns containing a "/") matches the glob are printed. With the UI
// enabled, the files are shown in an interactive listing instead.
func (app *App) Find(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("find", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	match := flags.String("match", "", "only list files matching this glob (e.g. *.md or docs/**/*.html)")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse find flags: %w", err)
	}

	if *match != "" && !doublestar.ValidatePattern(*match) {
		return fmt.Errorf("%w: %q", doublestar.ErrBadPattern, *match)
	}

	roots := flags.Args()
	if len(roots) == 0 {
		roots = []string{app.fichier.GetCurrentDirectory()}
	}

	files, err := app.fichier.GetAllFiles(roots)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if *match != "" {
		files = matchFiles(files, *match)
	}

	if app.uiEnabled {
		if err := app.LaunchUI(ctx, fmt.Sprint(roots), files); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		} else {
			return nil
		}
	}

	return app.println(files...)
}

// matchFiles returns the files matching a validated glob pattern. Patterns
// without a separator are matched against the base name only.
func matchFiles(files []string, pattern string) []string {
	matched := make([]string, 0, len(files))

	for _, file := range files {
		name := filepath.ToSlash(file)
		if !strings.Contains(pattern, "/") {
			name = filepath.Base(file)
		}

		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, file)
		}
	}

	return matched
}

// LaunchUI shows the files in the interactive listing, with the logs
// redirected into it while it owns the terminal.
func (app *App) LaunchUI(ctx context.Context, title string, files []string) error {
	uiHandler := ui.NewHandler(ctx, title, files)

	app.uiRunning.Store(true)
	defer app.uiRunning.Store(false)

	app.logManager.RemoveHandler(terminalLogHandler)
	app.logManager.SetHandler(uiLogHandler, tint.NewHandler(uiHandler.LogWriter, &tint.Options{
		Level:   app.config.LogLevel,
		NoColor: true,
	}))
	defer func() {
		app.logManager.RemoveHandler(uiLogHandler)
		app.logManager.SetHandler(terminalLogHandler, newTerminalHandler(app.config.LogLevel))
	}()

	slog.Info("Listing files:", "roots", title, "files", len(files))

	if err := uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// UIRunning returns true while the interactive listing owns the terminal.
func (app *App) UIRunning() bool {
	return app.uiRunning.Load()
}

func (app *App) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(app.stdout, line); err != nil {
			return fmt.Errorf("failed to print: %w", err)
		}
	}

	return nil
}
