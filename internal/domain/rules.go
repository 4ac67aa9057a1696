package domain

// directions a winning line can run in, anchored at its first cell
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// FindWinningLine checks every cell for "does a win start here?" and
// returns the first line of ToWin cells owned by player.
func FindWinningLine(board *Board, player PlayerID) ([]Cell, bool) {
	if player == Empty {
		return nil, false
	}
	for y := 0; y < board.Rows(); y++ {
		for x := 0; x < board.Columns(); x++ {
			for _, d := range directions {
				if line, ok := lineFrom(board, y, x, d[0], d[1], player); ok {
					return line, true
				}
			}
		}
	}
	return nil, false
}

// lineFrom builds the candidate starting at (row, column). Cells outside
// the board disqualify the candidate.
func lineFrom(board *Board, row, column, deltaRow, deltaCol int, player PlayerID) ([]Cell, bool) {
	line := make([]Cell, 0, ToWin)
	for i := 0; i < ToWin; i++ {
		r, c := row+i*deltaRow, column+i*deltaCol
		if !board.InBounds(r, c) || board.Get(r, c) != player {
			return nil, false
		}
		line = append(line, Cell{Row: r, Column: c})
	}
	return line, true
}

func CheckWin(board *Board, player PlayerID) bool {
	_, ok := FindWinningLine(board, player)
	return ok
}

// CheckTie only makes sense once CheckWin has failed for the last mover.
func CheckTie(board *Board) bool {
	return board.IsFull()
}
