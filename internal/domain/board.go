package domain

// Board is the logical grid. Row 0 is the top, Rows()-1 the landing row.
type Board struct {
	cells [][]PlayerID
}

func NewBoard() *Board {
	b, _ := NewBoardSized(Rows, Columns)
	return b
}

func NewBoardSized(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, columns)
	}
	return &Board{cells: cells}, nil
}

func (b *Board) Rows() int {
	return len(b.cells)
}

func (b *Board) Columns() int {
	return len(b.cells[0])
}

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Rows() && column >= 0 && column < b.Columns()
}

// Get returns Empty for positions outside the board.
func (b *Board) Get(row, column int) PlayerID {
	if !b.InBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// Set claims an empty cell for player 1 or 2. Occupied cells are never
// overwritten.
func (b *Board) Set(row, column int, player PlayerID) error {
	if !player.IsPlayer() {
		return ErrInvalidPlayer
	}
	if !b.InBounds(row, column) {
		return ErrOutOfBounds
	}
	if b.cells[row][column] != Empty {
		return ErrCellOccupied
	}
	b.cells[row][column] = player
	return nil
}

// FindSpot scans the column from the bottom up and returns the first
// empty row, or NoSpot.
func (b *Board) FindSpot(column int) int {
	if column < 0 || column >= b.Columns() {
		return NoSpot
	}
	for row := b.Rows() - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row
		}
	}
	return NoSpot
}

func (b *Board) IsFull() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// Snapshot creates a deep copy of the board as plain ints for transport.
func (b *Board) Snapshot() [][]int {
	out := make([][]int, len(b.cells))
	for i := range b.cells {
		out[i] = make([]int, len(b.cells[i]))
		for j := range b.cells[i] {
			out[i][j] = int(b.cells[i][j])
		}
	}
	return out
}
