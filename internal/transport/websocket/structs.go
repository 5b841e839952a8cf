package websocket

import (
	"encoding/json"

	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload is what clients send: their identity plus the fields the
// particular action needs.
type RequestPayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Cell   int            `json:"cell"`
	Level  string         `json:"level,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameResponse  `json:"game,omitempty"`

	// Event is a presentation cue (win, lose, draw, invalid_move, ...);
	// clients map it to sounds and animations, the server never acts on it.
	Event string `json:"event,omitempty"`
	Error string `json:"error,omitempty"`
}

type GameResponse struct {
	ID         string          `json:"id"`
	Board      tictactoe.Board `json:"board"`
	Turn       string          `json:"turn"`
	Winner     string          `json:"winner"`
	Status     string          `json:"status"`
	Difficulty int             `json:"difficulty"`
	Score      entity.Score    `json:"score"`
}

func newGameResponse(game *entity.Game) *GameResponse {
	return &GameResponse{
		ID:         game.ID,
		Board:      game.Board,
		Turn:       game.Turn,
		Winner:     game.Winner,
		Status:     game.Status,
		Difficulty: game.Difficulty,
		Score:      game.Score,
	}
}

// frame represents one WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	length  uint64
	payload []byte
}
