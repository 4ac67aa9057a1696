package websocket

import (
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

const (
	TypeDrop         = "drop"
	TypeState        = "state"
	TypePiecePlaced  = "piece_placed"
	TypeGameOver     = "game_over"
	TypeMoveRejected = "move_rejected"
	TypeError        = "error"
)

// ClientMessage is what the page sends when a column selector is clicked.
type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column"`
}

type PiecePlacedMessage struct {
	Type   string `json:"type"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Player int    `json:"player"`
}

type GameOverMessage struct {
	Type    string        `json:"type"`
	Message string        `json:"message"`
	Winner  int           `json:"winner"`
	Line    []domain.Cell `json:"line,omitempty"`
}

type StateMessage struct {
	Type  string     `json:"type"`
	State game.State `json:"state"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
