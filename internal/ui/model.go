package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const maxLogLines = 100

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

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TeaModel is the principal [tea.Model] for the command-line user interface.
// It shows a scrollable list of files above a panel of recent logs.
type TeaModel struct {
	width  int
	height int

	uiHandler *Handler

	title string
	files []string

	fullWidthWithBorders int

	filesViewport viewport.Model
	logsViewport  viewport.Model
	logs          []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, title string, files []string) TeaModel {
	return TeaModel{
		uiHandler:     uiHandler,
		title:         title,
		files:         files,
		filesViewport: viewport.New(80, 20),
		logsViewport:  viewport.New(80, 5),
		logs:          make([]string, 0, maxLogLines),
		ready:         false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = max(m.width-2, 0)

		// The logs take about a quarter of the height, the help line one row.
		logsHeight := max(m.height/4, 3)
		filesHeight := m.height - logsHeight - 1

		// Viewport heights: panel heights minus borders and title.
		m.filesViewport.Width = m.fullWidthWithBorders
		m.filesViewport.Height = max(filesHeight-3, 1)
		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = max(logsHeight-3, 1)

		m.filesViewport.SetContent(m.renderFiles())
		m.setLogsContent()

		if !m.ready {
			m.ready = true
			if m.uiHandler != nil {
				m.uiHandler.Ready.Store(true)
			}
		}

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, string(msg))
		m.setLogsContent()
	}

	// Scrolling keys go to the file list.
	m.filesViewport, cmd = m.filesViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m TeaModel) renderFiles() string {
	if len(m.files) == 0 {
		return "No files found."
	}

	return lipgloss.NewStyle().
		Width(m.filesViewport.Width).
		Render(strings.Join(m.files, "\n"))
}

func (m *TeaModel) setLogsContent() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	filesTitle := fmt.Sprintf("%s (%s files, %.0f%%)",
		m.title,
		humanize.Comma(int64(len(m.files))),
		m.filesViewport.ScrollPercent()*100, //nolint:mnd
	)

	filesSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render(filesTitle),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.filesViewport.View()),
			),
		)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("↑/↓/pgup/pgdn: scroll • q: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		filesSection,
		logsSection,
		helpSection,
	)
}
