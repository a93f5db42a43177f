package api

import (
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/service"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	svc *service.GameService
}

// NewGameHandler creates a new GameHandler backed by the given service.
func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}
