package engine

import (
	"fmt"
	"strings"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

// winCause names the reason one standard move defeats another.
type winCause struct {
	winner, loser game.Move
}

// causeText covers the six directional pairs of the standard cycle. Together
// with the draw, no-contest and bomb branches in Explain this makes the
// explanation total over every reachable (user, bot) combination.
var causeText = map[winCause]string{
	{game.MoveRock, game.MoveScissors}:  "Rock crushes scissors.",
	{game.MoveScissors, game.MovePaper}: "Scissors cuts paper.",
	{game.MovePaper, game.MoveRock}:     "Paper covers rock.",
}

// Explain produces the human-readable cause string for a resolved round.
// The generic fallback at the bottom should never be reached; if it shows up
// in output, the resolver and this table disagree.
func Explain(userMove *game.Move, botMove game.Move, winner game.Winner, classification game.Classification) string {
	if classification == game.ClassificationInvalid {
		return fmt.Sprintf("Your move was INVALID. Turn wasted. (Bot played %s)", botMove.Upper())
	}
	if classification == game.ClassificationUnclear {
		return fmt.Sprintf("Your move was UNCLEAR. Turn wasted. (Bot played %s)", botMove.Upper())
	}
	if winner == game.WinnerNoContest {
		return "No valid move played. Turn wasted."
	}
	if winner == game.WinnerDraw {
		return fmt.Sprintf("Both played %s. It's a draw!", botMove.Upper())
	}

	if *userMove == game.MoveBomb {
		return fmt.Sprintf("Your BOMB destroys %s. You win!", botMove.Upper())
	}
	if botMove == game.MoveBomb {
		return fmt.Sprintf("Bot's BOMB destroys your %s. Bot wins!", userMove.Upper())
	}

	if winner == game.WinnerUser {
		if txt, ok := causeText[winCause{*userMove, botMove}]; ok {
			return txt + " You win!"
		}
	} else {
		if txt, ok := causeText[winCause{botMove, *userMove}]; ok {
			return txt + " Bot wins!"
		}
	}

	// Defensive default only; signals a resolver/table mismatch.
	return fmt.Sprintf("%s wins!", capitalize(string(winner)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
