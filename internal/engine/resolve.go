package engine

import (
	"fmt"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

// beats maps each standard move to the move it defeats.
var beats = map[game.Move]game.Move{
	game.MoveRock:     game.MoveScissors,
	game.MoveScissors: game.MovePaper,
	game.MovePaper:    game.MoveRock,
}

// ResolveMoves determines the winner of a round. Pure function, no side
// effects. The rule order is load-bearing: equality is checked before the
// bomb priority so bomb-vs-bomb resolves to a draw, not a bomb win.
func ResolveMoves(userMove *game.Move, botMove game.Move) game.Winner {
	if userMove == nil {
		return game.WinnerNoContest
	}
	mustKnownMove(*userMove)
	mustKnownMove(botMove)

	if *userMove == botMove {
		return game.WinnerDraw
	}
	if *userMove == game.MoveBomb {
		return game.WinnerUser
	}
	if botMove == game.MoveBomb {
		return game.WinnerBot
	}
	if beats[*userMove] == botMove {
		return game.WinnerUser
	}
	return game.WinnerBot
}

// mustKnownMove enforces the engine's input contract: a malformed move is a
// programming error in the caller, not a recoverable condition.
func mustKnownMove(m game.Move) {
	if !m.Known() {
		panic(fmt.Sprintf("engine: unknown move %q", string(m)))
	}
}
