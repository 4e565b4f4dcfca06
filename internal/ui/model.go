package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/sessfile/internal/diskstat"
	"github.com/dustin/go-humanize"
)

const (
	// VolumeRefreshInterval is the updating interval of the volume
	// statistics shown in the information panel.
	VolumeRefreshInterval = 3 * time.Second

	// chromeHeight is the vertical space the panels around the content
	// viewport occupy, borders included.
	chromeHeight = 15
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// usageMsg is a [tea.Msg] containing refreshed [diskstat.Stats].
type usageMsg struct {
	t     time.Time
	stats diskstat.Stats
	err   error
}

// contentMsg is a [tea.Msg] containing freshly loaded file contents.
type contentMsg struct {
	content string
	size    int64
	err     error
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler
	session   sessionProvider
	volume    volumeStatsProvider

	fullWidthWithBorders int

	content contentMsg
	stats   diskstat.Stats
	lastLog string

	usageProgress   progress.Model
	contentViewport viewport.Model

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, session sessionProvider, volume volumeStatsProvider, cancel context.CancelFunc) TeaModel {
	usageProgress := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(80),
	)

	contentViewport := viewport.New(80, 20)

	return TeaModel{
		uiHandler:       uiHandler,
		session:         session,
		volume:          volume,
		usageProgress:   usageProgress,
		contentViewport: contentViewport,
		cancel:          cancel,
		ready:           false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	m.uiHandler.Ready.Store(true)

	return tea.Batch(
		tea.EnterAltScreen,
		loadContent(m.session),
		updateVolumeUsage(m.volume, m.session),
	)
}

// loadContent produces a [tea.Cmd] for later scheduling in a [tea.Program].
// When executed, a [contentMsg] with the session's decoded and flattened
// file contents is returned.
func loadContent(session sessionProvider) tea.Cmd {
	return func() tea.Msg {
		// Drop any held handle so the read starts at the top of the file.
		_ = session.Close()

		contents, err := session.Content()
		if err != nil {
			return contentMsg{err: err}
		}

		size, err := session.Size()
		if err != nil {
			return contentMsg{err: err}
		}

		return contentMsg{content: renderContent(contents), size: size}
	}
}

// updateVolumeUsage produces a [tea.Cmd] for later scheduling in a
// [tea.Program]. When executed, a [usageMsg] with the [diskstat.Stats] of
// the volume holding the session's file is returned.
func updateVolumeUsage(volume volumeStatsProvider, session sessionProvider) tea.Cmd {
	return tea.Tick(VolumeRefreshInterval, func(t time.Time) tea.Msg {
		stats, err := volume.Usage(session.Dir())

		return usageMsg{t: t, stats: stats, err: err}
	})
}

// renderContent flattens decoded file contents into displayable text.
func renderContent(v any) string {
	switch contents := v.(type) {
	case nil:
		return "<empty document>"
	case string:
		return contents
	case []byte:
		return fmt.Sprintf("<%s of binary contents>", humanize.Bytes(uint64(len(contents))))
	default:
		data, err := json.MarshalIndent(contents, "", "    ")
		if err != nil {
			return fmt.Sprintf("%v", contents)
		}

		return string(data)
	}
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "r":
			return m, loadContent(m.session)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		// Progress bar should match the content width.
		m.usageProgress.Width = m.fullWidthWithBorders

		// The content viewport takes whatever the other panels leave over.
		viewportHeight := m.height - chromeHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		m.contentViewport.Width = m.fullWidthWithBorders
		m.contentViewport.Height = viewportHeight

		m.refreshViewport()

		if !m.ready {
			m.ready = true
		}

	case contentMsg:
		m.content = msg
		m.refreshViewport()

	case usageMsg:
		if msg.err == nil && msg.stats.FreeSpace <= msg.stats.TotalSize {
			m.stats = msg.stats

			if m.stats.TotalSize > 0 {
				used := m.stats.TotalSize - m.stats.FreeSpace
				cmds = append(cmds, m.usageProgress.SetPercent(float64(used)/float64(m.stats.TotalSize)))
			}
		}

		// Queue the next update.
		cmds = append(cmds, updateVolumeUsage(m.volume, m.session))

	case LogMsg:
		m.lastLog = strings.TrimSuffix(string(msg), "\n")

	case progress.FrameMsg:
		updated, cmd := m.usageProgress.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.usageProgress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	// Handle viewport updates.
	m.contentViewport, cmd = m.contentViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshViewport re-renders the file contents into the viewport, fitted to
// the current viewport width.
func (m *TeaModel) refreshViewport() {
	text := m.content.content
	if m.content.err != nil {
		text = fmt.Sprintf("Contents could not be loaded: %v", m.content.err)
	}

	rendered := lipgloss.NewStyle().
		Width(m.contentViewport.Width).
		Render(strings.TrimSuffix(text, "\n"))

	m.contentViewport.SetContent(rendered)
	m.contentViewport.GotoTop()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	infoSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(m.formatInfoView())

	contentSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("File Contents"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.contentViewport.View()),
			),
		)

	statusSection := infoStyle.
		Width(m.fullWidthWithBorders).
		Render("Activity: " + m.lastLog)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • r: reload file • ctrl+c: quit program")

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		infoSection,
		contentSection,
		statusSection,
		helpSection,
	))

	return s.String()
}

// formatInfoView is a helper function for rendering the information panel.
func (m TeaModel) formatInfoView() string {
	fileType := m.session.Type()
	if fileType == "" {
		fileType = "untyped"
	}

	size := "unknown"
	if m.content.err == nil {
		size = humanize.Bytes(uint64(m.content.size))
	}

	details := fmt.Sprintf(
		"File: %s (%s)\n"+
			"Path: %s\n"+
			"Size: %s\n",
		m.session.Name(),
		fileType,
		m.session.Path(),
		size,
	)

	volume := "Volume: calculating..."
	if m.stats.TotalSize > 0 {
		volume = fmt.Sprintf("Volume: %s free of %s",
			humanize.Bytes(m.stats.FreeSpace),
			humanize.Bytes(m.stats.TotalSize),
		)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.fullWidthWithBorders).Render("File Session"),
		"", // Empty line for spacing.
		infoStyle.Width(m.fullWidthWithBorders).Render(details),
		m.usageProgress.View(),
		"", // Empty line for spacing.
		infoStyle.Width(m.fullWidthWithBorders).Render(volume),
	)

	return content
}
