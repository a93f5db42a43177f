package engine

import (
	"math/rand"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

// BotStrategy picks the bot's next move. It is injected into the round
// transition so tests can script deterministic bot behavior.
type BotStrategy interface {
	// NextMove receives the round number being resolved (post-increment)
	// and whether the bot already spent its bomb.
	NextMove(roundNumber int, bombUsed bool) game.Move
}

// RandomStrategy is the default bot: uniform over rock/paper/scissors, with
// a configurable chance of playing the bomb once it becomes eligible. The
// eligibility constraint is hard — the bomb is never produced before
// MinBombRound rounds have been played, nor after it was used — while the
// probability itself is intentionally randomized.
type RandomStrategy struct {
	// BombProbability is the chance of playing bomb when eligible.
	BombProbability float64
	// MinBombRound is the number of rounds that must have been played
	// before the bomb becomes eligible.
	MinBombRound int

	rng *rand.Rand
}

// NewRandomStrategy returns the default bot strategy (20% bomb chance, no
// bomb before two rounds have been played). A nil source falls back to the
// global rand source.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{BombProbability: 0.2, MinBombRound: 2, rng: rng}
}

func (s *RandomStrategy) randFloat() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

func (s *RandomStrategy) randIntn(n int) int {
	if s.rng != nil {
		return s.rng.Intn(n)
	}
	return rand.Intn(n)
}

// NextMove implements BotStrategy. roundNumber is the round being resolved,
// so "no bomb in the first two rounds" means roundNumber <= MinBombRound.
func (s *RandomStrategy) NextMove(roundNumber int, bombUsed bool) game.Move {
	eligible := !bombUsed && roundNumber > s.MinBombRound
	if eligible && s.randFloat() < s.BombProbability {
		return game.MoveBomb
	}
	return game.StandardMoves[s.randIntn(len(game.StandardMoves))]
}

// FixedStrategy always plays the same move. Used by tests and useful for
// debugging sessions against a predictable opponent.
type FixedStrategy struct {
	Move game.Move
}

func (s FixedStrategy) NextMove(int, bool) game.Move { return s.Move }

// ScriptedStrategy replays a fixed sequence of moves, then repeats the last
// one. Test helper for multi-round scenarios.
type ScriptedStrategy struct {
	Moves []game.Move
	next  int
}

func (s *ScriptedStrategy) NextMove(int, bool) game.Move {
	if len(s.Moves) == 0 {
		return game.MoveRock
	}
	if s.next >= len(s.Moves) {
		return s.Moves[len(s.Moves)-1]
	}
	m := s.Moves[s.next]
	s.next++
	return m
}
