package domain

import (
	"errors"
	"fmt"
)

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	WinningLine   []Cell
	MoveCount     int
	Moves         []Move
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// MakeMove drops a disk for the current player. Once the game is finished
// every call fails with ErrGameOver and nothing changes.
func (g *Game) MakeMove(column int) (Move, error) {
	if g.IsFinished() {
		return Move{}, ErrGameOver
	}

	if column < 0 || column >= g.Board.Columns() {
		return Move{}, ErrColumnOutOfRange
	}

	row := g.Board.FindSpot(column)
	if row == NoSpot {
		return Move{}, ErrColumnFull
	}

	if err := g.Board.Set(row, column, g.CurrentPlayer); err != nil {
		return Move{}, err
	}

	move := Move{Column: column, Row: row, Player: g.CurrentPlayer}
	g.MoveCount++
	g.Moves = append(g.Moves, move)

	if line, ok := FindWinningLine(g.Board, g.CurrentPlayer); ok {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		g.WinningLine = line
		return move, nil
	}

	if CheckTie(g.Board) {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// OutcomeMessage is the text announced when the game ends, empty while it
// is still running.
func (g *Game) OutcomeMessage() string {
	switch g.Status {
	case StatusWon:
		return fmt.Sprintf("Player %d won!", g.Winner)
	case StatusDraw:
		return "It is a tie!"
	}
	return ""
}

// IsIgnorable reports errors for clicks that are dropped without notice.
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrColumnFull) || errors.Is(err, ErrColumnOutOfRange)
}
