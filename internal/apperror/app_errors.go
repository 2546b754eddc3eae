package apperror

import "errors"

var (
	ErrInvalidRoll = errors.New("invalid roll")
	ErrGameOver    = errors.New("game is already over")
)
