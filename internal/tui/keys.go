package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Columns []key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func newKeyMap(columns int) keyMap {
	km := keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " ", "down", "j"),
			key.WithHelp("enter/↓/j", "drop"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	// digits only reach 9, wider boards use the cursor
	for x := 0; x < columns && x < 9; x++ {
		digit := strconv.Itoa(x + 1)
		km.Columns = append(km.Columns, key.NewBinding(key.WithKeys(digit)))
	}
	if len(km.Columns) > 0 {
		km.Columns[0].SetHelp("1-"+strconv.Itoa(len(km.Columns)), "pick column")
	}
	return km
}

// columnFor returns the column a digit key selects.
func (k keyMap) columnFor(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Columns {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}

func (k keyMap) ShortHelp() []key.Binding {
	short := []key.Binding{k.Left, k.Right, k.Drop}
	if len(k.Columns) > 0 {
		short = append(short, k.Columns[0])
	}
	return append(short, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
