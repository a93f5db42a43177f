package service

import (
	"errors"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/storage"
)

var (
	// ErrSessionNotFound mirrors the storage sentinel so handlers only
	// depend on the service package.
	ErrSessionNotFound = storage.ErrSessionNotFound
	// ErrSessionExists is surfaced as a conflict when starting a game
	// with a taken session ID.
	ErrSessionExists = storage.ErrSessionExists
	// ErrGameAlreadyOver rejects a round requested after the round limit
	// was reached; the round is not silently processed.
	ErrGameAlreadyOver = errors.New("game is already over")
	// ErrInvalidMaxRounds rejects a non-positive or out-of-bound round limit.
	ErrInvalidMaxRounds = errors.New("max_rounds out of range")
)
