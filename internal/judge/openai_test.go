package judge

import (
	"errors"
	"strings"
	"testing"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
)

func TestParseInterpretation_Valid(t *testing.T) {
	interp, err := ParseInterpretation(`{"classification":"VALID","interpreted_move":"rock","reasoning":"clear intent"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interp.Classification != game.ClassificationValid {
		t.Fatalf("expected VALID, got %s", interp.Classification)
	}
	if interp.InterpretedMove == nil || *interp.InterpretedMove != game.MoveRock {
		t.Fatalf("expected rock, got %v", interp.InterpretedMove)
	}
}

func TestParseInterpretation_CodeFenced(t *testing.T) {
	content := "```json\n{\"classification\":\"unclear\",\"interpreted_move\":null,\"reasoning\":\"two moves named\"}\n```"
	interp, err := ParseInterpretation(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interp.Classification != game.ClassificationUnclear {
		t.Fatalf("expected UNCLEAR, got %s", interp.Classification)
	}
	if interp.InterpretedMove != nil {
		t.Fatalf("expected no move for UNCLEAR")
	}
}

func TestParseInterpretation_DropsMoveUnlessValid(t *testing.T) {
	interp, err := ParseInterpretation(`{"classification":"INVALID","interpreted_move":"bomb","reasoning":"bomb already used"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interp.InterpretedMove != nil {
		t.Fatalf("INVALID interpretation must not carry a move")
	}
}

func TestParseInterpretation_Rejects(t *testing.T) {
	cases := []string{
		`not json`,
		`{"classification":"MAYBE","reasoning":"?"}`,
		`{"classification":"VALID","interpreted_move":null,"reasoning":"missing move"}`,
		`{"classification":"VALID","interpreted_move":"lizard","reasoning":"bad move"}`,
	}
	for _, c := range cases {
		if _, err := ParseInterpretation(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

func TestFallback(t *testing.T) {
	interp := Fallback("rock", errTest)
	if interp.Classification != game.ClassificationInvalid {
		t.Fatalf("fallback must be INVALID, got %s", interp.Classification)
	}
	if interp.InterpretedMove != nil {
		t.Fatalf("fallback must carry no move")
	}
	if interp.RawInput != "rock" {
		t.Fatalf("fallback must echo raw input")
	}
}

var errTest = errors.New("llm unavailable")

func TestIntentPrompt_ContainsContext(t *testing.T) {
	last := game.MovePaper
	p := prompts.IntentPrompt("dynamite", prompts.TurnContext{RoundNumber: 4, UserBombUsed: true, LastUserMove: &last})
	for _, want := range []string{"Round: 4", "User has used bomb: true", "Last user move: paper", `"dynamite"`, "CANNOT use bomb"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
	p = prompts.IntentPrompt("rock", prompts.TurnContext{RoundNumber: 1})
	for _, want := range []string{"Last user move: None", "CAN use bomb"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}
