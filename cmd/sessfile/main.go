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

	"github.com/desertwitch/sessfile/internal/configuration"
	"github.com/desertwitch/sessfile/internal/diskstat"
	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	uiEnabled  = flag.Bool("ui", false, "view the given file in the UI")
	encoding   = flag.String("encoding", "", "character encoding for text access")
	allowAny   = flag.Bool("allow-any", false, "dispatch contents for any file type")
	jsonIndent = flag.Int("indent", configuration.DefaultJSONIndent, "indentation width for JSON documents")
	logLevel   = flag.String("log-level", "", "minimum level for log output")
	envFile    = flag.String("env-file", ".env", "path to the configuration file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

func setupLogging(logManager *SlogManager, level slog.Level) {
	logManager.AddHandler("terminal", tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()

	sigChan3 := make(chan os.Signal, 1)
	signal.Notify(sigChan3, syscall.SIGUSR2)
	go func() {
		for range sigChan3 {
			runtime.GC()
		}
	}()
}

func applyFlagOverrides(settings *configuration.Settings) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			settings.UIEnabled = *uiEnabled
		case "encoding":
			settings.Encoding = *encoding
		case "allow-any":
			settings.AllowAny = *allowAny
		case "indent":
			settings.JSONIndent = *jsonIndent
		case "log-level":
			var level slog.Level
			if err := level.UnmarshalText([]byte(*logLevel)); err == nil {
				settings.LogLevel = level
			}
		}
	})
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sessfile [flags] <command> [arguments]\n")
	fmt.Fprintf(os.Stderr, "       sessfile [flags] -ui <file>\n\n")
	fmt.Fprintf(os.Stderr, "commands:\n")
	fmt.Fprintf(os.Stderr, "  info <file>          show file session information\n")
	fmt.Fprintf(os.Stderr, "  cat <file>           print decoded file contents\n")
	fmt.Fprintf(os.Stderr, "  convert <src> <dst>  rewrite contents into another file's format\n")
	fmt.Fprintf(os.Stderr, "  merge <file> <json>  merge a JSON object into a JSON document\n\n")
	fmt.Fprintf(os.Stderr, "flags:\n")
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	logManager := NewSlogManager()
	slog.SetDefault(slog.New(logManager))

	configHandler := &configuration.ConfigProviderImpl{
		GenericConfigReader: &configuration.GodotenvProvider{},
	}

	settings, err := configHandler.Load(*envFile)
	if err != nil {
		setupLogging(logManager, slog.LevelInfo)
		slog.Error("Failed to establish configuration.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	applyFlagOverrides(settings)
	setupLogging(logManager, settings.LogLevel)
	setupSignalHandlers(cancel)

	memObserver := newMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := newCPUProfiler(ctx, cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := newAllocProfiler(ctx, memprofile)
	defer allocProfiler.Stop()

	diskHandler := diskstat.NewHandler(&diskstat.Unix{})
	app := NewApp(settings, diskHandler, logManager)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		ExitCode = 1

		return
	}

	if settings.UIEnabled {
		if err := app.LaunchUI(ctx, cancel, args[0]); err != nil {
			slog.Error("UI failure.",
				"err", err,
			)
			ExitCode = 1
		}

		return
	}

	if err := app.Launch(args[0], args[1:]); err != nil {
		slog.Error("Command failed.",
			"err", err,
		)
		ExitCode = 1
	}
}
