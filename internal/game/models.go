package game

import (
	"time"

	"gorm.io/gorm"
)

// Session status values.
const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Session tracks one game's progress across rounds. It is created with all
// counters at zero, mutated only by the engine's round transition (one
// mutation per round) and never touched again once Status is finished.
type Session struct {
	gorm.Model
	// SessionID is the caller-supplied key used to address the session
	// over the API. Unique across live sessions.
	SessionID string `json:"session_id" gorm:"uniqueIndex;size:64"`

	MaxRounds   int `json:"max_rounds"`
	RoundNumber int `json:"round_number"`
	UserScore   int `json:"user_score"`
	BotScore    int `json:"bot_score"`

	// Bomb flags flip from false to true exactly once, the moment that
	// side plays a validly-classified bomb, and never revert.
	UserBombUsed bool `json:"user_bomb_used"`
	BotBombUsed  bool `json:"bot_bomb_used"`

	Status string `json:"status"`
	// Winner holds the terminal result once the session is finished.
	Winner string `json:"winner"`

	// MoveHistory is append-only: one record per resolved round, in round
	// order, never mutated after append.
	MoveHistory []MoveRecord `json:"move_history" gorm:"foreignKey:SessionRef"`

	// LastPlayedAt drives the idle-session expiry scanner.
	LastPlayedAt time.Time `json:"last_played_at"`
}

// TableName keeps the persisted table name explicit.
func (Session) TableName() string { return "game_sessions" }

// GameOver reports whether the configured round limit has been reached.
func (s *Session) GameOver() bool {
	return s.Status == StatusFinished || (s.MaxRounds > 0 && s.RoundNumber >= s.MaxRounds)
}

// LastUserMove returns the user's move from the most recent round, or nil
// when no round has been played. Used as judge context.
func (s *Session) LastUserMove() *Move {
	if len(s.MoveHistory) == 0 {
		return nil
	}
	return s.MoveHistory[len(s.MoveHistory)-1].UserMove
}

// MoveRecord is one entry of a session's move history.
type MoveRecord struct {
	gorm.Model
	SessionRef uint `json:"-"`
	Round      int  `json:"round"`
	// UserMove is nil when no valid user move was available that round.
	UserMove *Move  `json:"user_move" gorm:"size:16"`
	BotMove  Move   `json:"bot_move" gorm:"size:16"`
	Winner   Winner `json:"winner" gorm:"size:16"`
}

func (MoveRecord) TableName() string { return "session_moves" }

// RoundResult is the snapshot returned to the caller after one round
// transition. It carries everything needed to render the round without
// re-reading the session.
type RoundResult struct {
	RoundNumber int    `json:"round_number"`
	UserMove    *Move  `json:"user_move"`
	BotMove     Move   `json:"bot_move"`
	Winner      Winner `json:"winner"`
	Explanation string `json:"explanation"`
	UserScore   int    `json:"user_score"`
	BotScore    int    `json:"bot_score"`
}

// MoveInterpretation is the judge's structured reading of a free-text move.
type MoveInterpretation struct {
	Classification Classification `json:"classification"`
	// InterpretedMove is nil unless Classification is VALID.
	InterpretedMove *Move  `json:"interpreted_move"`
	Reasoning       string `json:"reasoning"`
	RawInput        string `json:"raw_input"`
}
