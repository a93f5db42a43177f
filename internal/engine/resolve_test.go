package engine

import (
	"testing"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

func movePtr(m game.Move) *game.Move { return &m }

func TestResolveMoves_NoContestWhenUserMoveAbsent(t *testing.T) {
	for _, bot := range game.ValidMoves {
		if w := ResolveMoves(nil, bot); w != game.WinnerNoContest {
			t.Fatalf("nil vs %s: expected no_contest, got %s", bot, w)
		}
	}
}

func TestResolveMoves_DrawOnEquality(t *testing.T) {
	// Includes bomb vs bomb: equality must be checked before bomb priority.
	for _, m := range game.ValidMoves {
		if w := ResolveMoves(movePtr(m), m); w != game.WinnerDraw {
			t.Fatalf("%s vs %s: expected draw, got %s", m, m, w)
		}
	}
}

func TestResolveMoves_BombPriority(t *testing.T) {
	for _, m := range game.StandardMoves {
		if w := ResolveMoves(movePtr(game.MoveBomb), m); w != game.WinnerUser {
			t.Fatalf("bomb vs %s: expected user, got %s", m, w)
		}
		if w := ResolveMoves(movePtr(m), game.MoveBomb); w != game.WinnerBot {
			t.Fatalf("%s vs bomb: expected bot, got %s", m, w)
		}
	}
}

func TestResolveMoves_StandardCycle(t *testing.T) {
	cases := []struct {
		user, bot game.Move
		want      game.Winner
	}{
		{game.MoveRock, game.MoveScissors, game.WinnerUser},
		{game.MoveScissors, game.MovePaper, game.WinnerUser},
		{game.MovePaper, game.MoveRock, game.WinnerUser},
		{game.MoveScissors, game.MoveRock, game.WinnerBot},
		{game.MovePaper, game.MoveScissors, game.WinnerBot},
		{game.MoveRock, game.MovePaper, game.WinnerBot},
	}
	for _, c := range cases {
		if w := ResolveMoves(movePtr(c.user), c.bot); w != c.want {
			t.Fatalf("%s vs %s: expected %s, got %s", c.user, c.bot, c.want, w)
		}
	}
}

func TestResolveMoves_PanicsOnUnknownMove(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on malformed move")
		}
	}()
	ResolveMoves(movePtr(game.Move("lizard")), game.MoveRock)
}

func TestExplain_CoversAllReachablePairs(t *testing.T) {
	// Every VALID (user, bot) pair must hit a specific template; the
	// generic "<Winner> wins!" fallback indicates a table mismatch.
	for _, user := range game.ValidMoves {
		for _, bot := range game.ValidMoves {
			w := ResolveMoves(movePtr(user), bot)
			got := Explain(movePtr(user), bot, w, game.ClassificationValid)
			if got == capitalize(string(w))+" wins!" {
				t.Fatalf("%s vs %s fell through to generic fallback", user, bot)
			}
		}
	}
}

func TestExplain_KnownCases(t *testing.T) {
	cases := []struct {
		user           *game.Move
		bot            game.Move
		winner         game.Winner
		classification game.Classification
		want           string
	}{
		{movePtr(game.MoveRock), game.MoveScissors, game.WinnerUser, game.ClassificationValid, "Rock crushes scissors. You win!"},
		{movePtr(game.MoveRock), game.MovePaper, game.WinnerBot, game.ClassificationValid, "Paper covers rock. Bot wins!"},
		{movePtr(game.MoveBomb), game.MoveRock, game.WinnerUser, game.ClassificationValid, "Your BOMB destroys ROCK. You win!"},
		{movePtr(game.MovePaper), game.MoveBomb, game.WinnerBot, game.ClassificationValid, "Bot's BOMB destroys your PAPER. Bot wins!"},
		{movePtr(game.MoveBomb), game.MoveBomb, game.WinnerDraw, game.ClassificationValid, "Both played BOMB. It's a draw!"},
		{nil, game.MoveRock, game.WinnerNoContest, game.ClassificationValid, "No valid move played. Turn wasted."},
		{nil, game.MoveScissors, game.WinnerNoContest, game.ClassificationInvalid, "Your move was INVALID. Turn wasted. (Bot played SCISSORS)"},
		{nil, game.MovePaper, game.WinnerNoContest, game.ClassificationUnclear, "Your move was UNCLEAR. Turn wasted. (Bot played PAPER)"},
	}
	for _, c := range cases {
		if got := Explain(c.user, c.bot, c.winner, c.classification); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}
