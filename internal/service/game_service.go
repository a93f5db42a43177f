package service

import (
	"context"
	"fmt"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/constants"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/dedupe"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/engine"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/judge"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/logging"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/storage"
)

// MaxRoundsLimit caps the configurable round limit per game.
const MaxRoundsLimit = 20

// DefaultMaxRounds is used when the caller does not specify a limit.
const DefaultMaxRounds = 5

// GameService orchestrates one game turn end to end: judge classification,
// engine round transition, persistence. It owns the per-session locks that
// guarantee at-most-one in-flight round resolution per session.
type GameService struct {
	repo     storage.Repository
	judge    judge.Judge
	strategy engine.BotStrategy
	locks    *sessionLocks
}

// NewGameService wires the service with its collaborators. The strategy is
// injected so tests can script deterministic bot moves.
func NewGameService(repo storage.Repository, j judge.Judge, strategy engine.BotStrategy) *GameService {
	return &GameService{repo: repo, judge: j, strategy: strategy, locks: newSessionLocks()}
}

// StartGame creates a fresh session. maxRounds of 0 selects the default;
// anything outside [1, MaxRoundsLimit] is rejected.
func (svc *GameService) StartGame(sessionID string, maxRounds int) (*game.Session, error) {
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}
	if maxRounds < 1 || maxRounds > MaxRoundsLimit {
		return nil, ErrInvalidMaxRounds
	}
	s := &game.Session{
		SessionID:    sessionID,
		MaxRounds:    maxRounds,
		Status:       game.StatusInProgress,
		LastPlayedAt: time.Now(),
	}
	if err := svc.repo.CreateSession(s); err != nil {
		return nil, err
	}
	logging.Info("game started", logging.Fields{constants.LogFieldSessionID: sessionID, "max_rounds": maxRounds})
	return s, nil
}

// PlayOutcome is everything one turn produces: the judge's reading of the
// input, the engine's round result, and the terminal result when the round
// limit was just reached.
type PlayOutcome struct {
	Interpretation game.MoveInterpretation `json:"interpretation"`
	Result         game.RoundResult        `json:"result"`
	GameOver       bool                    `json:"game_over"`
	FinalWinner    game.Winner             `json:"final_winner,omitempty"`
}

// PlayMove runs one full turn for the session. Judge failures are recovered
// as an INVALID/no-move interpretation (the turn is wasted, never crashed);
// a session at its round limit is rejected with ErrGameAlreadyOver.
func (svc *GameService) PlayMove(ctx context.Context, sessionID, userInput string) (*PlayOutcome, error) {
	lock := svc.locks.lock(sessionID)
	defer lock.Unlock()

	s, err := svc.repo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if s.GameOver() {
		return nil, ErrGameAlreadyOver
	}

	interp := svc.classify(ctx, s, userInput)

	// The engine only sees a move when the judge called it VALID.
	var userMove *game.Move
	if interp.Classification == game.ClassificationValid {
		userMove = interp.InterpretedMove
	}

	result := engine.PlayRound(s, svc.strategy, userMove, interp.Classification, interp.Reasoning)
	s.LastPlayedAt = time.Now()

	outcome := &PlayOutcome{Interpretation: interp, Result: result}
	if s.GameOver() {
		outcome.GameOver = true
		outcome.FinalWinner = engine.FinalResult(s)
		s.Status = game.StatusFinished
		s.Winner = string(outcome.FinalWinner)
	}

	if err := svc.repo.UpdateSession(s); err != nil {
		return nil, err
	}

	logging.Info("round resolved", logging.Fields{
		constants.LogFieldSessionID: sessionID,
		constants.LogFieldRound:     result.RoundNumber,
		constants.LogFieldWinner:    string(result.Winner),
		constants.LogFieldMove:      string(result.BotMove),
	})
	return outcome, nil
}

// classify asks the judge for a structured interpretation, collapsing
// concurrent identical submissions through singleflight and substituting
// the safe INVALID fallback on any failure.
func (svc *GameService) classify(ctx context.Context, s *game.Session, userInput string) game.MoveInterpretation {
	turn := prompts.TurnContext{
		RoundNumber:  s.RoundNumber + 1,
		UserBombUsed: s.UserBombUsed,
		LastUserMove: s.LastUserMove(),
	}

	key := fmt.Sprintf("%s:%d:%s", s.SessionID, turn.RoundNumber, userInput)
	v, err, _ := dedupe.ClassifyGroup.Do(key, func() (interface{}, error) {
		return svc.judge.ClassifyMove(ctx, userInput, turn)
	})
	if err != nil {
		logging.Error("judge classification failed; wasting turn", err, logging.Fields{constants.LogFieldSessionID: s.SessionID})
		return judge.Fallback(userInput, err)
	}
	interp, ok := v.(game.MoveInterpretation)
	if !ok {
		return judge.Fallback(userInput, fmt.Errorf("unexpected result type from singleflight"))
	}
	interp.RawInput = userInput
	return interp
}

// GetState returns the session snapshot with history loaded.
func (svc *GameService) GetState(sessionID string) (*game.Session, error) {
	return svc.repo.GetSession(sessionID)
}

// FinalSummary is returned when a session is ended explicitly.
type FinalSummary struct {
	FinalWinner game.Winner `json:"final_winner"`
	UserScore   int         `json:"user_score"`
	BotScore    int         `json:"bot_score"`
	TotalRounds int         `json:"total_rounds"`
}

// EndGame reduces the session to its terminal result and deletes it.
func (svc *GameService) EndGame(sessionID string) (*FinalSummary, error) {
	lock := svc.locks.lock(sessionID)
	defer lock.Unlock()

	s, err := svc.repo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	summary := &FinalSummary{
		FinalWinner: engine.FinalResult(s),
		UserScore:   s.UserScore,
		BotScore:    s.BotScore,
		TotalRounds: s.RoundNumber,
	}
	if err := svc.repo.DeleteSession(sessionID); err != nil {
		return nil, err
	}
	svc.locks.forget(sessionID)
	logging.Info("game ended", logging.Fields{constants.LogFieldSessionID: sessionID, constants.LogFieldWinner: string(summary.FinalWinner)})
	return summary, nil
}

// ListSessions returns the IDs of all live sessions.
func (svc *GameService) ListSessions() ([]string, error) {
	return svc.repo.ListSessionIDs()
}

// SessionCount returns the number of live sessions without loading their IDs.
func (svc *GameService) SessionCount() (int64, error) {
	return svc.repo.CountSessions()
}

// JudgeReady reports whether the configured judge can take classification
// requests.
func (svc *GameService) JudgeReady() bool {
	return svc.judge != nil && svc.judge.Ready()
}
