package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/desertwitch/sessfile"
	"github.com/desertwitch/sessfile/internal/configuration"
	"github.com/desertwitch/sessfile/internal/diskstat"
	"github.com/desertwitch/sessfile/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
)

type App struct {
	settings    *configuration.Settings
	diskHandler *diskstat.Handler
	logManager  *SlogManager
}

func NewApp(settings *configuration.Settings,
	diskHandler *diskstat.Handler,
	logManager *SlogManager,
) *App {
	return &App{
		settings:    settings,
		diskHandler: diskHandler,
		logManager:  logManager,
	}
}

func (app *App) Launch(command string, args []string) error {
	switch command {
	case "info":
		if len(args) != 1 {
			return fmt.Errorf("(app) %w: info <file>", ErrUsage)
		}

		return app.Info(args[0])
	case "cat":
		if len(args) != 1 {
			return fmt.Errorf("(app) %w: cat <file>", ErrUsage)
		}

		return app.Cat(args[0])
	case "convert":
		if len(args) != 2 {
			return fmt.Errorf("(app) %w: convert <src> <dst>", ErrUsage)
		}

		return app.Convert(args[0], args[1])
	case "merge":
		if len(args) != 2 {
			return fmt.Errorf("(app) %w: merge <file> <json>", ErrUsage)
		}

		return app.Merge(args[0], args[1])
	default:
		return fmt.Errorf("(app) %w: %q", ErrUnknownCommand, command)
	}
}

func (app *App) Info(path string) error {
	session, err := sessfile.New(path, app.sessionOptions(true))
	if err != nil {
		return fmt.Errorf("(app-info) %w", err)
	}
	defer session.Close()

	size, err := session.Size()
	if err != nil {
		return fmt.Errorf("(app-info) %w", err)
	}

	checksum, err := session.Checksum()
	if err != nil {
		return fmt.Errorf("(app-info) %w", err)
	}

	slog.Info("File session established.",
		"path", session.Path(),
		"type", session.Type(),
		"encoding", session.Encoding(),
		"mode", session.Mode(),
		"size", humanize.Bytes(uint64(size)),
		"checksum", checksum,
	)

	if stats, err := app.diskHandler.Usage(session.Dir()); err == nil {
		slog.Info("Containing volume measured.",
			"free", humanize.Bytes(stats.FreeSpace),
			"total", humanize.Bytes(stats.TotalSize),
		)
	}

	return nil
}

func (app *App) Cat(path string) error {
	session, err := sessfile.New(path, app.sessionOptions(true))
	if err != nil {
		return fmt.Errorf("(app-cat) %w", err)
	}
	defer session.Close()

	contents, err := session.Content()
	if err != nil {
		return fmt.Errorf("(app-cat) %w", err)
	}

	switch contents := contents.(type) {
	case nil:
	case string:
		fmt.Print(contents)
	case []byte:
		_, _ = os.Stdout.Write(contents)
	default:
		indent := app.settings.JSONIndent
		if indent < 0 {
			indent = 0
		}

		data, err := json.MarshalIndent(contents, "", strings.Repeat(" ", indent))
		if err != nil {
			return fmt.Errorf("(app-cat) %w", err)
		}

		fmt.Println(string(data))
	}

	return nil
}

func (app *App) Convert(srcPath string, dstPath string) error {
	src, err := sessfile.New(srcPath, app.sessionOptions(true))
	if err != nil {
		return fmt.Errorf("(app-convert) %w", err)
	}
	defer src.Close()

	contents, err := src.Content()
	if err != nil {
		return fmt.Errorf("(app-convert) %w", err)
	}

	dst, err := sessfile.New(dstPath, app.sessionOptions(false))
	if err != nil {
		return fmt.Errorf("(app-convert) %w", err)
	}
	defer dst.Close()

	if err := dst.Write(contents, "w+", app.writeOptions()); err != nil {
		return fmt.Errorf("(app-convert) %w", err)
	}

	slog.Info("Contents carried over.",
		"source", src.Path(),
		"destination", dst.Path(),
		"type", dst.Type(),
	)

	return nil
}

func (app *App) Merge(path string, document string) error {
	var content map[string]any
	if err := json.Unmarshal([]byte(document), &content); err != nil {
		return fmt.Errorf("(app-merge) %w: %w", ErrUsage, err)
	}

	session, err := sessfile.New(path, app.sessionOptions(false))
	if err != nil {
		return fmt.Errorf("(app-merge) %w", err)
	}
	defer session.Close()

	if err := session.UpdateJSON(content, app.writeOptions()); err != nil {
		return fmt.Errorf("(app-merge) %w", err)
	}

	slog.Info("Document was merged.",
		"path", session.Path(),
		"keys", len(content),
	)

	return nil
}

func (app *App) LaunchUI(ctx context.Context, cancel context.CancelFunc, path string) error {
	session, err := sessfile.New(path, app.sessionOptions(false))
	if err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}
	defer session.Close()

	uiHandler := ui.NewHandler(ctx, cancel, session, app.diskHandler)

	app.logManager.RemoveHandler("terminal")
	app.logManager.AddHandler("ui", tint.NewHandler(uiHandler.LogWriter, &tint.Options{
		Level:      app.settings.LogLevel,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}))

	defer func() {
		app.logManager.RemoveHandler("ui")
		setupLogging(app.logManager, app.settings.LogLevel)
	}()

	if err := uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

func (app *App) sessionOptions(mustExist bool) *sessfile.Options {
	return &sessfile.Options{
		Encoding:  app.settings.Encoding,
		MustExist: mustExist,
		AllowAny:  app.settings.AllowAny,
	}
}

func (app *App) writeOptions() *sessfile.WriteOptions {
	indent := app.settings.JSONIndent
	if indent == 0 {
		// The codec layer spells compact output as a negative width.
		indent = -1
	}

	return &sessfile.WriteOptions{Indent: indent}
}
