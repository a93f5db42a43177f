package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/engine"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/storage"
)

type mockRepo struct {
	sessions map[string]*game.Session
	updated  *game.Session
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: make(map[string]*game.Session)}
}

func (m *mockRepo) CreateSession(s *game.Session) error {
	if _, ok := m.sessions[s.SessionID]; ok {
		return storage.ErrSessionExists
	}
	m.sessions[s.SessionID] = s
	return nil
}

func (m *mockRepo) GetSession(sessionID string) (*game.Session, error) {
	if s, ok := m.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, storage.ErrSessionNotFound
}

func (m *mockRepo) UpdateSession(s *game.Session) error {
	m.sessions[s.SessionID] = s
	m.updated = s
	return nil
}

func (m *mockRepo) DeleteSession(sessionID string) error {
	if _, ok := m.sessions[sessionID]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockRepo) ListSessionIDs() ([]string, error) {
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockRepo) CountSessions() (int64, error) { return int64(len(m.sessions)), nil }

func (m *mockRepo) FindIdleSessions(cutoff time.Time) ([]game.Session, error) {
	var out []game.Session
	for _, s := range m.sessions {
		if !s.LastPlayedAt.After(cutoff) {
			out = append(out, *s)
		}
	}
	return out, nil
}

// stubJudge returns a canned interpretation, or an error to exercise the
// fallback path.
type stubJudge struct {
	interp game.MoveInterpretation
	err    error
	calls  int
}

func (j *stubJudge) ClassifyMove(_ context.Context, rawInput string, _ prompts.TurnContext) (game.MoveInterpretation, error) {
	j.calls++
	if j.err != nil {
		return game.MoveInterpretation{}, j.err
	}
	interp := j.interp
	interp.RawInput = rawInput
	return interp, nil
}

func (j *stubJudge) Ready() bool { return true }

func validInterp(m game.Move) game.MoveInterpretation {
	return game.MoveInterpretation{
		Classification:  game.ClassificationValid,
		InterpretedMove: &m,
		Reasoning:       "clear intent",
	}
}

func TestStartGame_DefaultsAndBounds(t *testing.T) {
	repo := newMockRepo()
	svc := NewGameService(repo, &stubJudge{}, engine.FixedStrategy{Move: game.MoveRock})

	s, err := svc.StartGame("abc", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MaxRounds != DefaultMaxRounds {
		t.Fatalf("expected default max rounds %d, got %d", DefaultMaxRounds, s.MaxRounds)
	}

	if _, err := svc.StartGame("too-many", 21); !errors.Is(err, ErrInvalidMaxRounds) {
		t.Fatalf("expected ErrInvalidMaxRounds, got %v", err)
	}
	if _, err := svc.StartGame("abc", 3); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}
}

func TestPlayMove_UserWins(t *testing.T) {
	repo := newMockRepo()
	svc := NewGameService(repo, &stubJudge{interp: validInterp(game.MoveRock)}, engine.FixedStrategy{Move: game.MoveScissors})
	if _, err := svc.StartGame("s1", 5); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := svc.PlayMove(context.Background(), "s1", "rock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Winner != game.WinnerUser {
		t.Fatalf("expected user win, got %s", out.Result.Winner)
	}
	if out.Result.UserScore != 1 || out.Result.BotScore != 0 {
		t.Fatalf("expected 1-0, got %d-%d", out.Result.UserScore, out.Result.BotScore)
	}
	if repo.updated == nil || repo.updated.RoundNumber != 1 {
		t.Fatalf("session not persisted after round")
	}
}

func TestPlayMove_JudgeFailureWastesTurn(t *testing.T) {
	repo := newMockRepo()
	svc := NewGameService(repo, &stubJudge{err: errors.New("llm down")}, engine.FixedStrategy{Move: game.MoveRock})
	if _, err := svc.StartGame("s1", 5); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := svc.PlayMove(context.Background(), "s1", "rock")
	if err != nil {
		t.Fatalf("judge failure must not fail the turn: %v", err)
	}
	if out.Interpretation.Classification != game.ClassificationInvalid {
		t.Fatalf("expected INVALID fallback, got %s", out.Interpretation.Classification)
	}
	if out.Result.Winner != game.WinnerNoContest {
		t.Fatalf("expected no_contest, got %s", out.Result.Winner)
	}
	if out.Result.UserScore != 0 || out.Result.BotScore != 0 {
		t.Fatalf("scores must not change, got %d-%d", out.Result.UserScore, out.Result.BotScore)
	}
	if out.Result.RoundNumber != 1 {
		t.Fatalf("round must still be consumed, got %d", out.Result.RoundNumber)
	}
}

func TestPlayMove_GameOverRejected(t *testing.T) {
	repo := newMockRepo()
	svc := NewGameService(repo, &stubJudge{interp: validInterp(game.MoveRock)}, engine.FixedStrategy{Move: game.MoveScissors})
	if _, err := svc.StartGame("s1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := svc.PlayMove(context.Background(), "s1", "rock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.GameOver {
		t.Fatalf("expected game over after reaching round limit")
	}
	if out.FinalWinner != game.WinnerUser {
		t.Fatalf("expected final winner user, got %s", out.FinalWinner)
	}

	if _, err := svc.PlayMove(context.Background(), "s1", "paper"); !errors.Is(err, ErrGameAlreadyOver) {
		t.Fatalf("expected ErrGameAlreadyOver, got %v", err)
	}
}

func TestPlayMove_SessionNotFound(t *testing.T) {
	svc := NewGameService(newMockRepo(), &stubJudge{}, engine.FixedStrategy{Move: game.MoveRock})
	if _, err := svc.PlayMove(context.Background(), "missing", "rock"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEndGame_ReturnsSummaryAndDeletes(t *testing.T) {
	repo := newMockRepo()
	judge := &stubJudge{interp: validInterp(game.MoveRock)}
	svc := NewGameService(repo, judge, engine.FixedStrategy{Move: game.MoveScissors})
	if _, err := svc.StartGame("s1", 5); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.PlayMove(context.Background(), "s1", "rock"); err != nil {
		t.Fatalf("play: %v", err)
	}

	summary, err := svc.EndGame("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.FinalWinner != game.WinnerUser {
		t.Fatalf("expected user, got %s", summary.FinalWinner)
	}
	if summary.UserScore != 1 || summary.BotScore != 0 || summary.TotalRounds != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if _, err := svc.GetState("s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("session must be gone after EndGame, got %v", err)
	}
}

func TestExpireIdleSessions(t *testing.T) {
	repo := newMockRepo()
	now := time.Now()
	repo.sessions["old"] = &game.Session{SessionID: "old", LastPlayedAt: now.Add(-2 * time.Hour)}
	repo.sessions["fresh"] = &game.Session{SessionID: "fresh", LastPlayedAt: now}

	removed, err := ExpireIdleSessions(repo, time.Hour, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok := repo.sessions["old"]; ok {
		t.Fatalf("idle session should be deleted")
	}
	if _, ok := repo.sessions["fresh"]; !ok {
		t.Fatalf("fresh session should survive")
	}
}
