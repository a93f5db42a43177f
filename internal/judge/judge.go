// Package judge implements the intent-understanding layer: it asks an LLM
// to read the user's free-text input and classify it as a game move. The
// engine never sees raw text; it only consumes the structured
// interpretation produced here.
package judge

import (
	"context"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
)

// Judge classifies a raw user input given the current turn context.
// Implementations may fail (network, quota); callers must substitute a safe
// INVALID/no-move interpretation rather than propagate the failure into the
// engine.
type Judge interface {
	ClassifyMove(ctx context.Context, rawInput string, turn prompts.TurnContext) (game.MoveInterpretation, error)
	// Ready reports whether the judge is configured (e.g. API key present).
	Ready() bool
}

// Fallback builds the safe interpretation substituted when a judge call
// fails: classification INVALID, no move, the error text as reasoning.
func Fallback(rawInput string, err error) game.MoveInterpretation {
	reasoning := "Error processing input"
	if err != nil {
		reasoning = "Error processing input: " + err.Error()
	}
	return game.MoveInterpretation{
		Classification: game.ClassificationInvalid,
		Reasoning:      reasoning,
		RawInput:       rawInput,
	}
}
