// Package render builds the visual structure of the board and defines the
// contracts that front ends implement to mirror game state.
package render

import (
	"fmt"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
)

// Renderer reflects a single placed disk into a visual surface.
type Renderer interface {
	PlacePiece(move domain.Move) error
}

// Notifier announces the end of a game to the user.
type Notifier interface {
	EndGame(outcome Outcome) error
}

// Outcome is what a Notifier presents once the game is over.
type Outcome struct {
	Message string
	Winner  domain.PlayerID
	Line    []domain.Cell
}

func OutcomeOf(g *domain.Game) Outcome {
	return Outcome{
		Message: g.OutcomeMessage(),
		Winner:  g.Winner,
		Line:    g.WinningLine,
	}
}

type Selector struct {
	ID     string
	Column int
}

type CellView struct {
	ID     string
	Row    int
	Column int
	Player domain.PlayerID
}

// BoardView is the table shown to players: one strip of column selectors
// followed by the grid rows.
type BoardView struct {
	Selectors []Selector
	Rows      [][]CellView
}

func CellID(row, column int) string {
	return fmt.Sprintf("%d-%d", row, column)
}

func NewBoardView(rows, columns int) BoardView {
	view := BoardView{
		Selectors: make([]Selector, columns),
		Rows:      make([][]CellView, rows),
	}
	for x := 0; x < columns; x++ {
		view.Selectors[x] = Selector{ID: fmt.Sprint(x), Column: x}
	}
	for y := 0; y < rows; y++ {
		view.Rows[y] = make([]CellView, columns)
		for x := 0; x < columns; x++ {
			view.Rows[y][x] = CellView{ID: CellID(y, x), Row: y, Column: x}
		}
	}
	return view
}

// Place marks one cell with the mover's disk.
func (v BoardView) Place(move domain.Move) {
	if move.Row < 0 || move.Row >= len(v.Rows) {
		return
	}
	row := v.Rows[move.Row]
	if move.Column < 0 || move.Column >= len(row) {
		return
	}
	row[move.Column].Player = move.Player
}
