// Package tui is an interactive terminal view for drawing teams repeatedly.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/drawid"
	"github.com/lox/teammaker/internal/render"
)

// DrawFunc produces one draw. A *draft.BalanceError is shown as a warning
// alongside its last result.
type DrawFunc func() (*draft.Result, error)

// drawnMsg carries a finished draw back into the update loop
type drawnMsg struct {
	result *draft.Result
	id     string
	err    error
}

// Model is the Bubble Tea model for the interactive view
type Model struct {
	draw      DrawFunc
	formatter *render.Formatter
	logger    *log.Logger

	viewport viewport.Model

	result  *draft.Result
	drawID  string
	err     error
	draws   int
	drawing bool

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a model that draws with draw and renders with formatter
func New(draw DrawFunc, formatter *render.Formatter, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &Model{
		draw:      draw,
		formatter: formatter,
		logger:    logger.WithPrefix("tui"),
		viewport:  vp,
		drawing:   true,
	}
}

// Init starts the first draw
func (m *Model) Init() tea.Cmd {
	return m.drawCmd()
}

func (m *Model) drawCmd() tea.Cmd {
	draw := m.draw
	return func() tea.Msg {
		res, err := draw()
		return drawnMsg{result: res, id: drawid.Generate(), err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case drawnMsg:
		m.drawing = false
		m.err = msg.err
		if msg.result != nil {
			m.draws++
			m.result = msg.result
			m.drawID = msg.id
			m.viewport.SetContent(m.formatter.FormatResult(m.result, m.drawID))
			m.viewport.GotoTop()
		}
		if msg.err != nil {
			m.logger.Debug("Draw finished with error", "error", msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width, 1)
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.drawing {
				return m, nil
			}
			m.drawing = true
			return m, m.drawCmd()
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// chromeHeight is the number of lines used by the header and help bar
const chromeHeight = 2

// View renders the header, the result pane and the help bar
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, HeaderStyle.Render("Team Maker"), " ", m.status())
	help := HelpStyle.Render("r redraw • ↑↓ scroll • PgUp/PgDn page • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), help)
}

func (m *Model) status() string {
	var balanceErr *draft.BalanceError
	switch {
	case m.drawing:
		return StatusStyle.Render("Drawing...")
	case errors.As(m.err, &balanceErr):
		return WarningStyle.Render(fmt.Sprintf("Draw #%d not balanced after %d attempts", m.draws, balanceErr.Attempts))
	case m.err != nil:
		return ErrorStyle.Render("Error: " + m.err.Error())
	case m.result != nil:
		return StatusStyle.Render(fmt.Sprintf("Draw #%d balanced after %d attempts", m.draws, m.result.Attempts))
	default:
		return ""
	}
}

// Result returns the result on screen, if any
func (m *Model) Result() *draft.Result {
	return m.result
}

// Draws returns how many draws have completed
func (m *Model) Draws() int {
	return m.draws
}

// Run starts the program on the alternate screen and blocks until it exits
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
