package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gridplay/tictactoe-ai-backend/internal/apperror"
	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

// DefaultLevel is the difficulty a new session starts with.
const DefaultLevel = "easy"

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID, level string) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	statsService  StatsService

	// difficulty level name -> search depth
	levels map[string]int
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	statsService StatsService,
	levels map[string]int,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		statsService:  statsService,
		levels:        levels,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID != "" {
		player, err := that.playerService.GetByID(ctx, playerID)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("failed to get player by id: %w", err)
		}
	}

	player := &entity.Player{ID: newID()}
	if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// GetOrCreateGame returns the player's current session, starting a fresh one
// against the bot when none exists. Marks are dealt at random; when the bot
// drew X it opens the game before the session is handed back.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		game, getErr := that.gameService.GetGameByID(ctx, player.GameID)
		if getErr == nil {
			return game, nil
		}

		if !errors.Is(getErr, apperror.ErrNotFound) {
			return nil, fmt.Errorf("failed to get game by id: %w", getErr)
		}
	}

	game, err := that.createGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(newID(), that.levels[DefaultLevel])

	botPlayer := entity.NewBotPlayer(game.ID)
	playerMark, botMark := game.GetRandomMarks()

	player.GameID = game.ID
	player.Mark = playerMark
	botPlayer.Mark = botMark
	game.Players = []*entity.Player{player, botPlayer}

	if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if botMark == tictactoe.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerMark", playerMark, "depth", game.Difficulty)

	return game, nil
}

// MakeTurn applies the human move and, while the game stays open, the bot's
// reply. A session is touched by one turn at a time; callers serialize access
// to it.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.recordResult(ctx, game)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// SetDifficulty switches the session's search depth. Turns are processed one
// at a time, so the depth never changes mid-search.
func (that *gamePlayService) SetDifficulty(ctx context.Context, playerID, level string) (*entity.Game, error) {
	depth, ok := that.levels[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, level)
	}

	_, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Difficulty = depth
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("difficulty changed", "gameID", game.ID, "level", level, "depth", depth)

	return game, nil
}

// ResetGame clears the board for the next game of the session, keeping the
// score tally and the difficulty. When the bot holds X it opens again.
func (that *gamePlayService) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	_, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if botPlayer := game.BotPlayer(); botPlayer != nil && botPlayer.Mark == tictactoe.PlayerX {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) playerGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}

func (that *gamePlayService) recordResult(ctx context.Context, game *entity.Game) {
	if err := that.statsService.RecordResult(ctx, game.Winner); err != nil {
		// the game result still reaches the client; only the totals lag
		that.logger.Error("failed to record result", "gameID", game.ID, "error", err)
	}
}

func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-id"
	}

	return hex.EncodeToString(b)
}
