package service

import (
	"errors"
	"fmt"

	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the bot's reply: it asks the search engine for the best move
// at the session's difficulty depth and applies it through the same turn
// validation a human move goes through.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, ok := tictactoe.BestMove(&game.Board, botPlayer.Mark, game.Difficulty)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, move.Index()); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
