package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/constants"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/service"

	"github.com/gin-gonic/gin"
)

var sessionIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func normalizeSessionID(s string) string {
	return strings.TrimSpace(s)
}

type StartGamePayload struct {
	SessionID string `json:"session_id"`
	MaxRounds int    `json:"max_rounds"`
}

// StartGame creates a new game session.
func (h *GameHandler) StartGame(c *gin.Context) {
	var req StartGamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	sessionID := normalizeSessionID(req.SessionID)
	if !sessionIDRegex.MatchString(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return
	}

	s, err := h.svc.StartGame(sessionID, req.MaxRounds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionExists):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionExists})
		case errors.Is(err, service.ErrInvalidMaxRounds):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMaxRoundsRange})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateGame})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":             s.SessionID,
		constants.JSONKeyMessage: fmt.Sprintf("Game started! Best of %d rounds.", s.MaxRounds),
		"rules":                  prompts.GameRulesExplanation,
		"game_state":             s,
	})
}

type PlayMovePayload struct {
	UserInput string `json:"user_input"`
}

// PlayMove classifies the free-text input and resolves one round.
func (h *GameHandler) PlayMove(c *gin.Context) {
	sessionID := normalizeSessionID(c.Param("sessionID"))
	if !sessionIDRegex.MatchString(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return
	}
	var req PlayMovePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrEmptyUserInput})
		return
	}
	if !h.svc.JudgeReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: constants.ErrJudgeNotConfigured})
		return
	}

	outcome, err := h.svc.PlayMove(c.Request.Context(), sessionID, req.UserInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		case errors.Is(err, service.ErrGameAlreadyOver):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGameAlreadyOver})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPlayMove})
		}
		return
	}

	resp := gin.H{
		"session_id":     sessionID,
		"round_number":   outcome.Result.RoundNumber,
		"interpretation": outcome.Interpretation,
		"result":         outcome.Result,
		"game_over":      outcome.GameOver,
	}
	if outcome.GameOver {
		resp["final_winner"] = outcome.FinalWinner
	}
	c.JSON(http.StatusOK, resp)
}

// GetState returns the current session snapshot including move history.
func (h *GameHandler) GetState(c *gin.Context) {
	sessionID := normalizeSessionID(c.Param("sessionID"))
	if !sessionIDRegex.MatchString(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return
	}
	s, err := h.svc.GetState(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "game_state": s})
}

// EndGame deletes the session and reports the final result.
func (h *GameHandler) EndGame(c *gin.Context) {
	sessionID := normalizeSessionID(c.Param("sessionID"))
	if !sessionIDRegex.MatchString(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return
	}
	summary, err := h.svc.EndGame(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEndGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: fmt.Sprintf("Game session %s ended", sessionID),
		"final_winner":           summary.FinalWinner,
		"final_score": gin.H{
			"user": summary.UserScore,
			"bot":  summary.BotScore,
		},
		"total_rounds": summary.TotalRounds,
	})
}

// ListSessions returns the IDs of all active sessions.
func (h *GameHandler) ListSessions(c *gin.Context) {
	ids, err := h.svc.ListSessions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedListGames})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_sessions": ids, "count": len(ids)})
}

// GetRules returns the rules text and the valid move vocabulary.
func (h *GameHandler) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules":       prompts.GameRulesExplanation,
		"valid_moves": []string{"rock", "paper", "scissors", "bomb"},
		"special_rules": []string{
			"Bomb beats everything but can only be used once",
			"Bomb vs bomb results in a draw",
			"Invalid or unclear moves waste your turn",
		},
	})
}

// Health reports service and judge status.
func (h *GameHandler) Health(c *gin.Context) {
	judgeStatus := "ready"
	if !h.svc.JudgeReady() {
		judgeStatus = "not_configured"
	}
	count, _ := h.svc.SessionCount()
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus: "healthy",
		"intent_judge":          judgeStatus,
		"active_sessions":       count,
	})
}
