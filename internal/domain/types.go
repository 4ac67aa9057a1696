package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// IsPlayer is true for the two seats that can own a cell.
func (p PlayerID) IsPlayer() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the player who moves after p.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// NoSpot is returned by FindSpot when a column cannot take another disk.
const NoSpot = -1

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Cell is a (row, column) position on the board.
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Move is a single placed disk.
type Move struct {
	Column int      `json:"column"`
	Row    int      `json:"row"`
	Player PlayerID `json:"player"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrColumnOutOfRange  Error = "column is out of range"
	ErrGameOver          Error = "game is over"
	ErrCellOccupied      Error = "cell is already occupied"
	ErrOutOfBounds       Error = "cell is out of bounds"
	ErrInvalidPlayer     Error = "cell owner must be player 1 or 2"
	ErrInvalidDimensions Error = "board dimensions must be positive"
)
