package engine

import (
	"fmt"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

// PlayRound executes one round transition against the given session. The
// steps happen in a fixed order: the round counter is incremented before the
// bot move is generated (bomb eligibility depends on the post-increment
// number), and bomb flags are set before scores and history are written.
//
// The caller must pass a nil userMove when classification is not VALID; the
// engine does not second-guess the classification beyond the bomb-flag
// gating. A malformed move or classification is a contract violation and
// panics.
func PlayRound(s *game.Session, strategy BotStrategy, userMove *game.Move, classification game.Classification, reasoning string) game.RoundResult {
	if !classification.Known() {
		panic(fmt.Sprintf("engine: unknown classification %q", string(classification)))
	}
	if userMove != nil {
		mustKnownMove(*userMove)
	}
	s.RoundNumber++

	botMove := strategy.NextMove(s.RoundNumber, s.BotBombUsed)
	mustKnownMove(botMove)

	// Bomb bookkeeping happens before resolution so future rounds observe
	// the flags. Re-setting an already-true user flag is deliberately a
	// no-op: rejecting bomb reuse is the classifier's job.
	if userMove != nil && *userMove == game.MoveBomb && classification == game.ClassificationValid {
		s.UserBombUsed = true
	}
	if botMove == game.MoveBomb {
		s.BotBombUsed = true
	}

	winner := ResolveMoves(userMove, botMove)

	switch winner {
	case game.WinnerUser:
		s.UserScore++
	case game.WinnerBot:
		s.BotScore++
	}

	explanation := Explain(userMove, botMove, winner, classification)

	s.MoveHistory = append(s.MoveHistory, game.MoveRecord{
		Round:    s.RoundNumber,
		UserMove: userMove,
		BotMove:  botMove,
		Winner:   winner,
	})

	return game.RoundResult{
		RoundNumber: s.RoundNumber,
		UserMove:    userMove,
		BotMove:     botMove,
		Winner:      winner,
		Explanation: explanation,
		UserScore:   s.UserScore,
		BotScore:    s.BotScore,
	}
}

// FinalResult reduces the accumulated scores to a terminal outcome. Pure and
// idempotent; callers decide when to treat it as authoritative.
func FinalResult(s *game.Session) game.Winner {
	switch {
	case s.UserScore > s.BotScore:
		return game.WinnerUser
	case s.BotScore > s.UserScore:
		return game.WinnerBot
	default:
		return game.WinnerDraw
	}
}
