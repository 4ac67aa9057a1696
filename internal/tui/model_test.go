package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func newModel() (*Model, *game.Session) {
	s := game.NewSession("tui")
	return New(s), s
}

func TestModel_DigitDropsIntoColumn(t *testing.T) {
	m, s := newModel()

	press(m, "4")
	assert.Equal(t, domain.Player1, s.Game.Board.Get(5, 3))
	assert.Equal(t, domain.Player1, m.view.Rows[5][3].Player)
	assert.Equal(t, 3, m.cursor)
	assert.Equal(t, domain.Player2, m.current)
}

func TestModel_CursorAndDrop(t *testing.T) {
	m, s := newModel()

	press(m, "left", "right", "right", "l", "enter")
	assert.Equal(t, 3, m.cursor)
	assert.Equal(t, domain.Player1, s.Game.Board.Get(5, 3))

	press(m, "h", " ")
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, domain.Player2, s.Game.Board.Get(5, 2))
}

func TestModel_EveryDropKeyIsAdvertised(t *testing.T) {
	m, s := newModel()

	help := m.keys.Drop.Help().Key
	for _, k := range []string{"enter", "↓", "j"} {
		assert.Contains(t, help, k)
	}
	assert.Contains(t, m.View(), "enter/↓/j")

	press(m, "j")
	assert.Equal(t, domain.Player1, s.Game.Board.Get(5, 0))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, domain.Player2, s.Game.Board.Get(4, 0))
}

func TestModel_CursorStaysOnBoard(t *testing.T) {
	m, _ := newModel()
	press(m, "left", "left")
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		press(m, "right")
	}
	assert.Equal(t, domain.Columns-1, m.cursor)
}

func TestModel_WinShowsModalUntilAcknowledged(t *testing.T) {
	m, s := newModel()
	press(m, "1", "7", "2", "7", "3", "7", "4")

	require.True(t, s.Game.IsFinished())
	require.NotNil(t, m.outcome)
	assert.True(t, m.modal)
	assert.Contains(t, m.View(), "Player 1 won!")

	// other keys are swallowed while the modal is up
	press(m, "5")
	assert.True(t, m.modal)
	assert.Equal(t, domain.Empty, s.Game.Board.Get(5, 4))

	press(m, "enter")
	assert.False(t, m.modal)
	assert.Equal(t, domain.Player1, m.current, "winner stays active")

	press(m, "5")
	assert.Equal(t, domain.ErrGameOver.Error(), m.status)
	assert.Equal(t, domain.Empty, s.Game.Board.Get(5, 4))
}

func TestModel_FullColumnIsSilent(t *testing.T) {
	m, s := newModel()
	press(m, "1", "1", "1", "1", "1", "1")

	press(m, "1")
	assert.Empty(t, m.status)
	assert.Equal(t, 6, s.Game.MoveCount)
	assert.Equal(t, domain.Player1, m.current)
}

func TestModel_Quit(t *testing.T) {
	m, s := newModel()
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// the detached model no longer mirrors the session
	_, err := s.HandleColumnClick(0)
	require.NoError(t, err)
	assert.Equal(t, domain.Empty, m.view.Rows[5][0].Player)
}

func TestModel_ResumesExistingSession(t *testing.T) {
	s := game.NewSession("resume")
	_, err := s.HandleColumnClick(2)
	require.NoError(t, err)

	m := New(s)
	assert.Equal(t, domain.Player1, m.view.Rows[5][2].Player)
	assert.Equal(t, domain.Player2, m.current)
}

func TestModel_View(t *testing.T) {
	m, _ := newModel()
	out := m.View()
	assert.Contains(t, out, "Connect Four")
	assert.Contains(t, out, "Player 1 to move")
	assert.Contains(t, out, "quit")
}
