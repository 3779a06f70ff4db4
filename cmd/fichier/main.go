// Command fichier exposes the file-system operations of package fichier on
// the command-line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/desertwitch/fichier"
	"github.com/desertwitch/fichier/internal/configuration"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	stackTraceBufMax = 1 << 24
	exitInterrupted  = 130
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	envFile   = flag.String("env", "", "read configuration from this file (default "+configuration.DefaultFile+" if it exists)")
	uiEnabled = flag.Bool("ui", false, "show the files found by find in an interactive listing")
)

const usage = `Usage: fichier [-env FILE] [-ui] <command> [arguments]

Commands:
  mkdir DIR                   create a directory and all missing parents
  write FILE [TEXT]           write TEXT (or stdin) to FILE
  publish -title T [-output DIR] [-translit]
                              write stdin to DIR/<title>/index.html
  cat FILE                    print the content of FILE
  ls [DIR]                    list the non-hidden entries of DIR
  pwd                         print the working directory
  docs                        print the documents directory
  find [-match GLOB] [DIR...] list all files below the DIRs

Flags:
`

func newTerminalHandler(level slog.Leveler) slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}

func setupLogging(level slog.Leveler) *SlogManager {
	logManager := NewSlogManager()
	logManager.SetHandler(terminalLogHandler, newTerminalHandler(level))

	slog.SetDefault(slog.New(logManager))

	return logManager
}

func setupSignalHandlers(cancel context.CancelFunc, app *App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()

		if !app.UIRunning() {
			os.Exit(exitInterrupted)
		}
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen]) //nolint:errcheck
		}
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage) //nolint:errcheck
		flag.PrintDefaults()
	}
	flag.Parse()

	logManager := setupLogging(slog.LevelInfo)

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	config, err := configuration.NewHandler(&configuration.GodotenvProvider{}).Load(envFiles...)
	if err != nil {
		slog.Error("Failed to load the configuration.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	logManager.SetHandler(terminalLogHandler, newTerminalHandler(config.LogLevel))

	slog.Debug("Configuration loaded:",
		"version", Version,
		"output", config.Output,
		"transliterate", config.Transliterate,
		"minFree", humanize.IBytes(config.MinFreeSpace),
	)

	if *uiEnabled && !isatty.IsTerminal(os.Stdout.Fd()) {
		slog.Warn("Standard output is not a terminal: disabling the UI.")
		*uiEnabled = false
	}

	f := fichier.New(fichier.WithMinFreeSpace(config.MinFreeSpace))
	app := NewApp(f, config, logManager, os.Stdin, os.Stdout, *uiEnabled)

	setupSignalHandlers(cancel, app)

	if flag.NArg() == 0 {
		flag.Usage()
		ExitCode = 2

		return
	}

	if err := app.Launch(ctx, flag.Args()); err != nil {
		slog.Error("Command failed.",
			"err", err,
		)
		ExitCode = 1
	}
}
