// Package tui is a terminal front end for a single hot-seat game.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/render"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	winStyle    = lipgloss.NewStyle().Underline(true).Bold(true)
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3).
			Bold(true)

	playerStyles = map[domain.PlayerID]lipgloss.Style{
		domain.Player1: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		domain.Player2: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
)

const (
	disc     = "●"
	hole     = "·"
	selector = "▼"
)

// Model mirrors a game session in the terminal. It is also the session's
// Renderer and Notifier.
type Model struct {
	session *game.Session
	view    render.BoardView
	keys    keyMap
	help    help.Model

	cursor  int
	current domain.PlayerID
	outcome *render.Outcome
	modal   bool
	status  string
}

func New(session *game.Session) *Model {
	state := session.Snapshot()
	rows, columns := len(state.Board), len(state.Board[0])

	m := &Model{
		session: session,
		view:    render.NewBoardView(rows, columns),
		keys:    newKeyMap(columns),
		help:    help.New(),
		current: domain.PlayerID(state.CurrentPlayer),
	}
	for _, move := range state.Moves {
		m.view.Place(move)
	}
	session.Attach(m, m)
	return m
}

func (m *Model) PlacePiece(move domain.Move) error {
	m.view.Place(move)
	return nil
}

func (m *Model) EndGame(outcome render.Outcome) error {
	m.outcome = &outcome
	m.modal = true
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.Detach(m)
			return m, tea.Quit
		}

		// the outcome has to be acknowledged before anything else
		if m.modal {
			if key.Matches(msg, m.keys.Dismiss) {
				m.modal = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.view.Selectors)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Drop):
			m.drop(m.cursor)
		default:
			if col, ok := m.keys.columnFor(msg); ok {
				m.cursor = col
				m.drop(col)
			}
		}
	}
	return m, nil
}

func (m *Model) drop(column int) {
	m.status = ""
	placed, err := m.session.HandleColumnClick(column)
	if err != nil {
		m.status = err.Error()
		return
	}
	if placed {
		m.current = domain.PlayerID(m.session.Snapshot().CurrentPlayer)
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Connect Four"))
	b.WriteString("\n\n")
	b.WriteString(frameStyle.Render(m.boardView()))
	b.WriteString("\n")

	if m.modal && m.outcome != nil {
		b.WriteString(modalStyle.Render(m.outcome.Message + "\n\npress enter"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) statusLine() string {
	if m.outcome != nil {
		return m.outcome.Message
	}
	return fmt.Sprintf("Player %d to move", m.current)
}

func (m *Model) boardView() string {
	var b strings.Builder

	// column selectors
	for x := range m.view.Selectors {
		cell := " "
		if x == m.cursor && m.outcome == nil {
			cell = playerStyles[m.current].Render(selector)
		}
		b.WriteString(" " + cell)
	}
	b.WriteString("\n")

	winning := map[domain.Cell]bool{}
	if m.outcome != nil {
		for _, c := range m.outcome.Line {
			winning[c] = true
		}
	}

	for _, row := range m.view.Rows {
		for _, cell := range row {
			b.WriteString(" " + renderCell(cell, winning[domain.Cell{Row: cell.Row, Column: cell.Column}]))
		}
		b.WriteString("\n")
	}

	for x := range m.view.Selectors {
		b.WriteString(" " + emptyStyle.Render(fmt.Sprint((x+1)%10)))
	}
	return b.String()
}

func renderCell(cell render.CellView, highlight bool) string {
	style, ok := playerStyles[cell.Player]
	if !ok {
		return emptyStyle.Render(hole)
	}
	if highlight {
		style = style.Inherit(winStyle)
	}
	return style.Render(disc)
}
