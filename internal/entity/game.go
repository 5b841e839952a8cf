package entity

import (
	"fmt"
	"math/rand"

	"github.com/gridplay/tictactoe-ai-backend/internal/apperror"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Score is the per-session tally of finished games. It survives board resets
// and is discarded together with the session.
type Score struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"ties"`
}

func (that *Score) Add(winner string) {
	switch winner {
	case tictactoe.PlayerX:
		that.X++
	case tictactoe.PlayerO:
		that.O++
	case tictactoe.Tie:
		that.Ties++
	}
}

// Game is one human-versus-bot session. The board itself carries the rules;
// Game adds whose turn it is, the result, the bot's search depth and the
// running score.
type Game struct {
	ID         string          `json:"id"`
	Board      tictactoe.Board `json:"board"`
	Winner     string          `json:"winner"`
	Status     string          `json:"status"`
	Turn       string          `json:"player_turn"`
	Difficulty int             `json:"difficulty"`
	Score      Score           `json:"score"`
	Players    []*Player       `json:"players,omitempty"`
}

func NewGame(id string, difficulty int) *Game {
	return &Game{
		ID:         id,
		Board:      tictactoe.Board{},
		Turn:       tictactoe.PlayerX,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}
}

// MakeTurn applies one mark to the board. Validation order: finished game,
// cell coordinates, turn ownership, occupancy. On any error the board is left
// untouched.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", tictactoe.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(tictactoe.MoveFromIndex(cell), playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = tictactoe.Opponent(playerMark)
	that.UpdateGameState()

	return nil
}

// UpdateGameState recomputes the result from the board. The outcome is never
// stored independently of a recompute, so it cannot diverge from the cells.
func (that *Game) UpdateGameState() {
	switch winner := that.Board.Winner(); winner {
	case tictactoe.PlayerX, tictactoe.PlayerO, tictactoe.Tie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
		that.Score.Add(winner)
	default:
		that.Status = StatusOngoing
	}
}

// Reset clears the board for the next game of the same session. The score
// tally and the difficulty are kept.
func (that *Game) Reset() {
	that.Board = tictactoe.Board{}
	that.Winner = ""
	that.Turn = tictactoe.PlayerX
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}

// GetRandomMarks deals marks for a new bot game: first value for the human,
// second for the bot.
func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return tictactoe.PlayerX, tictactoe.PlayerO
	}
	return tictactoe.PlayerO, tictactoe.PlayerX
}
