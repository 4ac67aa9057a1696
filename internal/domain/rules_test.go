package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// place fills the given cells for player directly, bypassing gravity.
func place(t *testing.T, b *Board, player PlayerID, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Set(c.Row, c.Column, player))
	}
}

func TestCheckWin_Directions(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
	}{
		{"horizontal", []Cell{{5, 0}, {5, 1}, {5, 2}, {5, 3}}},
		{"horizontal right edge", []Cell{{0, 3}, {0, 4}, {0, 5}, {0, 6}}},
		{"vertical", []Cell{{2, 6}, {3, 6}, {4, 6}, {5, 6}}},
		{"diagonal down-right", []Cell{{1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{"diagonal down-left", []Cell{{2, 6}, {3, 5}, {4, 4}, {5, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			place(t, b, Player2, tt.cells...)

			assert.True(t, CheckWin(b, Player2))
			assert.False(t, CheckWin(b, Player1))

			line, ok := FindWinningLine(b, Player2)
			require.True(t, ok)
			assert.ElementsMatch(t, tt.cells, line)
		})
	}
}

func TestCheckWin_ThreeIsNotEnough(t *testing.T) {
	tests := map[string][]Cell{
		"horizontal":          {{5, 0}, {5, 1}, {5, 2}},
		"vertical":            {{3, 0}, {4, 0}, {5, 0}},
		"diagonal down-right": {{3, 3}, {4, 4}, {5, 5}},
		"diagonal down-left":  {{3, 3}, {4, 2}, {5, 1}},
	}

	for name, cells := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBoard()
			place(t, b, Player1, cells...)
			assert.False(t, CheckWin(b, Player1))
		})
	}
}

func TestCheckWin_BrokenLine(t *testing.T) {
	b := NewBoard()
	place(t, b, Player1, Cell{5, 0}, Cell{5, 1}, Cell{5, 3}, Cell{5, 4})
	place(t, b, Player2, Cell{5, 2})

	assert.False(t, CheckWin(b, Player1))
}

func TestCheckWin_EdgeCandidatesStayInBounds(t *testing.T) {
	// candidates anchored on the last column and bottom row run off the
	// board; they must neither panic nor count
	b := NewBoard()
	place(t, b, Player1, Cell{5, 6}, Cell{4, 6}, Cell{5, 5})

	assert.NotPanics(t, func() {
		assert.False(t, CheckWin(b, Player1))
	})
}

func TestCheckWin_EmptyPlayer(t *testing.T) {
	assert.False(t, CheckWin(NewBoard(), Empty))
}

func TestCheckWin_SmallBoard(t *testing.T) {
	b, err := NewBoardSized(3, 3)
	require.NoError(t, err)
	place(t, b, Player1, Cell{0, 0}, Cell{1, 1}, Cell{2, 2})

	assert.False(t, CheckWin(b, Player1))
}

func TestCheckTie(t *testing.T) {
	b, err := NewBoardSized(2, 2)
	require.NoError(t, err)
	place(t, b, Player1, Cell{0, 0}, Cell{1, 1})
	place(t, b, Player2, Cell{0, 1})
	assert.False(t, CheckTie(b))

	place(t, b, Player2, Cell{1, 0})
	assert.True(t, CheckTie(b))
}
