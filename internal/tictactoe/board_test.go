package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Place on empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X is placed at (1, 1)
		err := board.Place(Move{Row: 1, Col: 1}, PlayerX)

		// Then: the center cell holds X and nothing else changed
		require.NoError(t, err)
		require.Equal(t, Board{"", "", "", "", PlayerX, "", "", "", ""}, board)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the center
		var board Board
		require.NoError(t, board.Place(Move{Row: 1, Col: 1}, PlayerX))
		before := board

		// When: O tries the same cell
		err := board.Place(Move{Row: 1, Col: 1}, PlayerO)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		require.Equal(t, before, board)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		// Given: an empty board
		var board Board

		for _, move := range []Move{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: -1, Col: 0}, {Row: 0, Col: -1}} {
			// When: a move outside the grid is attempted
			err := board.Place(move, PlayerX)

			// Then: ErrInvalidCell is returned and the board stays empty
			require.ErrorIs(t, err, ErrInvalidCell)
			require.Equal(t, Board{}, board)
		}
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Winner X by column", func(t *testing.T) {
		// Given: X holds the left column
		board := Board{PlayerX, PlayerO, "", PlayerX, PlayerO, "", PlayerX, "", ""}

		// Then: X is the winner
		require.Equal(t, PlayerX, board.Winner())
	})

	t.Run("Winner O by diagonal", func(t *testing.T) {
		// Given: O holds the main diagonal
		board := Board{PlayerO, PlayerX, "", PlayerX, PlayerO, "", "", "", PlayerO}

		// Then: O is the winner
		require.Equal(t, PlayerO, board.Winner())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with no complete line and empty cells left
		board := Board{PlayerX, PlayerO, PlayerX, "", PlayerO, "", PlayerX, "", ""}

		// Then: there is no result yet
		require.Equal(t, "", board.Winner())
		assert.False(t, board.IsFull())
	})

	t.Run("Tie on full board", func(t *testing.T) {
		// Given: a full board with no complete line
		board := Board{PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerX, PlayerX, PlayerO, PlayerX}

		// Then: the game is a tie
		require.Equal(t, Tie, board.Winner())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Winner_Monotonic(t *testing.T) {
	// Given: a sequence of legal alternating moves ending in a win for X
	var board Board
	moves := []struct {
		move Move
		mark string
	}{
		{Move{0, 0}, PlayerX},
		{Move{1, 0}, PlayerO},
		{Move{0, 1}, PlayerX},
		{Move{1, 1}, PlayerO},
		{Move{0, 2}, PlayerX},
	}

	// When: the moves are applied one by one
	for i, step := range moves {
		require.Equal(t, "", board.Winner(), "game ended before move %d", i)
		require.NoError(t, board.Place(step.move, step.mark))
	}

	// Then: the result appears exactly once the line completes and stays put
	require.Equal(t, PlayerX, board.Winner())
	require.Equal(t, PlayerX, board.Winner())
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		// Given: a board with two occupied cells
		board := Board{PlayerX, "", "", "", PlayerO, "", "", "", ""}

		// When: legal moves are listed
		moves := board.LegalMoves()

		// Then: all empty cells appear in row-major order
		expected := []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		require.Equal(t, expected, moves)
	})

	t.Run("Full board has none", func(t *testing.T) {
		// Given: a full board
		board := Board{PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerX, PlayerX, PlayerO, PlayerX}

		// Then: there are no legal moves
		require.Empty(t, board.LegalMoves())
	})
}

func TestMove_Index(t *testing.T) {
	// Given: every cell of the grid
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			move := Move{Row: row, Col: col}

			// Then: index and coordinates round-trip
			assert.Equal(t, row*3+col, move.Index())
			assert.Equal(t, move, MoveFromIndex(move.Index()))
		}
	}
}

func TestOpponent(t *testing.T) {
	require.Equal(t, PlayerO, Opponent(PlayerX))
	require.Equal(t, PlayerX, Opponent(PlayerO))
}
