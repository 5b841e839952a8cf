package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrNoActiveGames = errors.New("no active games")
	ErrNotFound      = errors.New("not found")
	ErrUnknownLevel  = errors.New("unknown difficulty level")
)
