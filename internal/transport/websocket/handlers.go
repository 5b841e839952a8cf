package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gridplay/tictactoe-ai-backend/internal/apperror"
	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

// Presentation cues sent with responses. The client maps them to sounds and
// animations; the server only reports them.
const (
	eventGameStart        = "game_start"
	eventMove             = "move"
	eventInvalidMove      = "invalid_move"
	eventResetGame        = "reset_game"
	eventChangeDifficulty = "change_difficulty"
	eventWin              = "win"
	eventLose             = "lose"
	eventDraw             = "draw"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payload, err := unmarshalRequest(msg)
	if err != nil {
		return err
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.gamePlay.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == playerID {
		that.logger.Info("player connected", "playerID", player.ID)
	} else {
		that.logger.Info("registered new player", "playerID", player.ID)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payload, err := unmarshalRequest(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: game.HumanPlayer(),
		Game:   newGameResponse(game),
		Event:  eventGameStart,
	}

	return that.sendMessage(*bufrw, msg.Action, responsePayload)
}

func (that *Server) handleTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payload, err := unmarshalRequest(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	game, err := that.gamePlay.MakeTurn(ctx, payload.Player.ID, payload.Cell)
	if isInvalidMove(err) {
		// recovered locally: the client gets a cue, the board is untouched
		responsePayload := ResponsePayload{
			Player: payload.Player,
			Event:  eventInvalidMove,
			Error:  err.Error(),
		}
		if game != nil {
			responsePayload.Game = newGameResponse(game)
		}

		return that.sendMessage(*bufrw, msg.Action, responsePayload)
	}

	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: game.HumanPlayer(),
		Game:   newGameResponse(game),
		Event:  outcomeEvent(game),
	}

	return that.sendMessage(*bufrw, msg.Action, responsePayload)
}

func (that *Server) handleDifficulty(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payload, err := unmarshalRequest(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	game, err := that.gamePlay.SetDifficulty(ctx, payload.Player.ID, payload.Level)
	if err != nil {
		return fmt.Errorf("failed to set difficulty: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: game.HumanPlayer(),
		Game:   newGameResponse(game),
		Event:  eventChangeDifficulty,
	}

	return that.sendMessage(*bufrw, msg.Action, responsePayload)
}

func (that *Server) handleReset(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payload, err := unmarshalRequest(msg)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		return errMissingPlayer
	}

	game, err := that.gamePlay.ResetGame(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	responsePayload := ResponsePayload{
		Player: game.HumanPlayer(),
		Game:   newGameResponse(game),
		Event:  eventResetGame,
	}

	return that.sendMessage(*bufrw, msg.Action, responsePayload)
}

var errMissingPlayer = errors.New("payload is missing the player")

func unmarshalRequest(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	return &payload, nil
}

// isInvalidMove tells a rejected move (a client can recover from it) apart
// from a real failure.
func isInvalidMove(err error) bool {
	return errors.Is(err, tictactoe.ErrCellOccupied) ||
		errors.Is(err, tictactoe.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished)
}

// outcomeEvent derives the presentation cue from the game result, from the
// human player's point of view.
func outcomeEvent(game *entity.Game) string {
	if !game.IsFinished() {
		return eventMove
	}

	if game.Winner == tictactoe.Tie {
		return eventDraw
	}

	human := game.HumanPlayer()
	if human != nil && game.Winner == human.Mark {
		return eventWin
	}

	return eventLose
}
