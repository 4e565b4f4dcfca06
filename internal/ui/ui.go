// Package ui implements a command-line user interface using [tea].
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/sessfile/internal/diskstat"
)

// sessionProvider defines the file session methods needed for display.
type sessionProvider interface {
	Path() string
	Name() string
	Dir() string
	Type() string
	Size() (int64, error)
	Content() (any, error)
	Close() error
}

// volumeStatsProvider defines methods needed for volume usage display.
type volumeStatsProvider interface {
	Usage(path string) (diskstat.Stats, error)
}

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	session sessionProvider
	volume  volumeStatsProvider
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc, session sessionProvider, volume volumeStatsProvider) *Handler {
	handler := &Handler{
		session: session,
		volume:  volume,
	}

	model := NewTeaModel(handler, session, volume, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
