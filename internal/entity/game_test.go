package entity

import (
	"testing"

	"github.com/gridplay/tictactoe-ai-backend/internal/apperror"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new game session with the default search depth
	game := NewGame("123", 6)

	// Then: the board is empty, X moves first and the tally is zeroed
	expectedGame := &Game{
		ID:         "123",
		Board:      tictactoe.Board{},
		Turn:       tictactoe.PlayerX,
		Winner:     "",
		Status:     StatusOngoing,
		Difficulty: 6,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", 6)

		// When: player X makes a turn
		err := game.MakeTurn(tictactoe.PlayerX, 0)
		require.NoError(t, err)

		// Then: the mark is on the board and the turn passed to O
		require.Equal(t, tictactoe.PlayerX, game.Board[0])
		require.Equal(t, tictactoe.PlayerO, game.Turn)
		require.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X took cell 0
		game := NewGame("123", 6)
		require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 0))
		before := *game

		// When: player O tries the same cell
		err := game.MakeTurn(tictactoe.PlayerO, 0)

		// Then: ErrCellOccupied is returned and the game state is unchanged
		require.ErrorIs(t, err, tictactoe.ErrCellOccupied)
		require.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game, X to move
		game := NewGame("123", 6)
		before := *game

		// When: player O tries to move first
		err := game.MakeTurn(tictactoe.PlayerO, 1)

		// Then: ErrNotYourTurn is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, before, *game)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", 6)

		// When: cell indexes outside the board are passed
		for _, cell := range []int{-1, 9, 20} {
			err := game.MakeTurn(tictactoe.PlayerX, cell)

			// Then: ErrInvalidCell is returned
			assert.ErrorIs(t, err, tictactoe.ErrInvalidCell)
		}
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game that X already won
		game := &Game{
			ID:     "123",
			Board:  tictactoe.Board{"X", "X", "X", "", "O", "", "", "O", ""},
			Status: StatusFinished,
			Winner: tictactoe.PlayerX,
		}

		// When: O tries to move anyway
		err := game.MakeTurn(tictactoe.PlayerO, 3)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning turn finishes the game and counts the score", func(t *testing.T) {
		// Given: X one move away from completing the top row
		game := NewGame("123", 6)
		game.Board = tictactoe.Board{"X", "X", "", "O", "O", "", "", "", ""}

		// When: X completes the row
		err := game.MakeTurn(tictactoe.PlayerX, 2)
		require.NoError(t, err)

		// Then: the game is finished, X recorded as the winner and tallied
		require.Equal(t, StatusFinished, game.Status)
		require.Equal(t, tictactoe.PlayerX, game.Winner)
		require.Equal(t, Score{X: 1}, game.Score)
		assert.Empty(t, game.Turn)
	})

	t.Run("Tie finishes the game", func(t *testing.T) {
		// Given: one empty cell left and no line possible
		game := NewGame("123", 6)
		game.Board = tictactoe.Board{"O", "X", "O", "O", "X", "X", "X", "O", ""}
		game.Turn = tictactoe.PlayerX

		// When: X fills the last cell
		err := game.MakeTurn(tictactoe.PlayerX, 8)
		require.NoError(t, err)

		// Then: the game is a tie
		require.Equal(t, StatusFinished, game.Status)
		require.Equal(t, tictactoe.Tie, game.Winner)
		require.Equal(t, Score{Ties: 1}, game.Score)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game with a recorded score
	game := NewGame("123", 6)
	game.Board = tictactoe.Board{"X", "X", "", "O", "O", "", "", "", ""}
	require.NoError(t, game.MakeTurn(tictactoe.PlayerX, 2))
	require.True(t, game.IsFinished())

	// When: the session is reset for the next game
	game.Reset()

	// Then: the board is clean, X moves first, the tally survived
	require.Equal(t, tictactoe.Board{}, game.Board)
	require.Equal(t, tictactoe.PlayerX, game.Turn)
	require.Equal(t, StatusOngoing, game.Status)
	require.Empty(t, game.Winner)
	assert.Equal(t, Score{X: 1}, game.Score)
}

func TestGame_Players(t *testing.T) {
	// Given: a game with a human and a bot
	game := NewGame("123", 6)
	human := &Player{ID: "abc", Mark: tictactoe.PlayerX, GameID: game.ID}
	bot := NewBotPlayer(game.ID)
	bot.Mark = tictactoe.PlayerO
	game.Players = []*Player{human, bot}

	// Then: the helpers find each of them
	require.Equal(t, bot, game.BotPlayer())
	require.Equal(t, human, game.HumanPlayer())
	assert.True(t, bot.IsBot())
	assert.False(t, human.IsBot())
}
