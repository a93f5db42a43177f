package game

import "strings"

// Move is one of the four playable moves. Using a dedicated type instead of
// plain string makes code safer and self-documenting.
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
	MoveBomb     Move = "bomb"
)

// StandardMoves are the non-bomb moves the bot falls back to whenever the
// bomb is not eligible.
var StandardMoves = []Move{MoveRock, MovePaper, MoveScissors}

// ValidMoves is the complete move vocabulary, in display order.
var ValidMoves = []Move{MoveRock, MovePaper, MoveScissors, MoveBomb}

// ParseMove normalizes a move string (trim + lowercase) and reports whether
// it names a known move.
func ParseMove(s string) (Move, bool) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Known()
}

// Known reports whether the move is one of the four valid values.
func (m Move) Known() bool {
	switch m {
	case MoveRock, MovePaper, MoveScissors, MoveBomb:
		return true
	}
	return false
}

// Upper returns the move name in upper case for user-facing messages.
func (m Move) Upper() string { return strings.ToUpper(string(m)) }

// Classification tags the judge's confidence in an interpreted move.
type Classification string

const (
	ClassificationValid   Classification = "VALID"
	ClassificationInvalid Classification = "INVALID"
	ClassificationUnclear Classification = "UNCLEAR"
)

// Known reports whether the classification is one of the three tags.
func (c Classification) Known() bool {
	switch c {
	case ClassificationValid, ClassificationInvalid, ClassificationUnclear:
		return true
	}
	return false
}

// Winner is the outcome category of a single round or of the whole game.
type Winner string

const (
	WinnerUser      Winner = "user"
	WinnerBot       Winner = "bot"
	WinnerDraw      Winner = "draw"
	WinnerNoContest Winner = "no_contest"
)
