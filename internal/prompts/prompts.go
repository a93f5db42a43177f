// Package prompts holds the judge's LLM prompt texts and the human-readable
// rules served over the API. The system prompt can be overridden at startup
// from the configuration file.
package prompts

import (
	"fmt"
	"strings"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

const defaultSystemPrompt = `You are an AI Judge for a Rock-Paper-Scissors Plus game.

GAME RULES:
1. Valid moves are: rock, paper, scissors, bomb
2. Standard rules: rock beats scissors, scissors beats paper, paper beats rock
3. Special rule: bomb beats everything (rock, paper, scissors)
4. Bomb limitation: Each player can use bomb ONLY ONCE per game
5. Bomb vs bomb: Results in a DRAW
6. If moves are identical (rock vs rock, etc.): Results in a DRAW

YOUR ROLE - INTENT UNDERSTANDING:
You must interpret the user's free-text input and classify it as:
- VALID: Clear intent to play rock, paper, scissors, or bomb
- INVALID: Not a game move, nonsensical, or prohibited (e.g., trying to use bomb twice)
- UNCLEAR: Ambiguous, could mean multiple things, or insufficient information

HANDLING AMBIGUITY:
- Accept common typos: "rok" -> rock, "papper" -> paper, "scisors" -> scissors
- Accept synonyms: "stone" -> rock, "dynamite"/"explosion"/"blast" -> bomb
- Reject multiple moves in one input: "rock and paper" -> UNCLEAR
- Reject vague inputs: "my special move" without context -> UNCLEAR
- Context matters: If user says "same as before" and there's no history -> UNCLEAR

CONSTRAINT ENFORCEMENT:
- If user has already used bomb and tries again -> INVALID (not UNCLEAR)
- If user tries to play something not in the valid moves -> INVALID

REASONING:
Always explain your classification clearly. The user needs to understand WHY their move was accepted or rejected.

OUTPUT FORMAT:
Respond with a single JSON object and nothing else:
{"classification": "VALID"|"INVALID"|"UNCLEAR", "interpreted_move": "rock"|"paper"|"scissors"|"bomb"|null, "reasoning": "<why>"}

Be strict but fair. When in doubt, mark as UNCLEAR rather than guessing.`

// systemPromptOverride replaces the built-in system prompt when set from
// configuration. See SetSystemPrompt.
var systemPromptOverride string

// SetSystemPrompt overrides the built-in judge system prompt. Call from main
// after loading configuration.
func SetSystemPrompt(p string) {
	systemPromptOverride = strings.TrimSpace(p)
}

// SystemPrompt returns the active judge system prompt.
func SystemPrompt() string {
	if systemPromptOverride != "" {
		return systemPromptOverride
	}
	return defaultSystemPrompt
}

// TurnContext is the slice of session state the judge needs for constraint
// checking: the round about to be played, whether the user already spent the
// bomb, and the user's previous move (nil before the first round).
type TurnContext struct {
	RoundNumber  int
	UserBombUsed bool
	LastUserMove *game.Move
}

// IntentPrompt builds the per-turn user prompt: game-state context followed
// by the raw input to classify.
func IntentPrompt(rawInput string, ctx TurnContext) string {
	lastMove := "None"
	if ctx.LastUserMove != nil {
		lastMove = string(*ctx.LastUserMove)
	}
	bombHint := "CAN use bomb (not yet used)"
	if ctx.UserBombUsed {
		bombHint = "CANNOT use bomb (already used)"
	}
	return fmt.Sprintf(`GAME STATE:
- Round: %d
- User has used bomb: %t
- Last user move: %s

USER INPUT: %q

Analyze this input and classify the move according to the game rules.
Remember: The user %s.
`, ctx.RoundNumber, ctx.UserBombUsed, lastMove, rawInput, bombHint)
}

// GameRulesExplanation is the rules text shown to players on game start and
// via the rules endpoint.
const GameRulesExplanation = `ROCK-PAPER-SCISSORS PLUS

Valid Moves: rock, paper, scissors, bomb

Rules:
- Rock beats scissors
- Scissors beats paper
- Paper beats rock
- Bomb beats everything (but can only be used ONCE)
- Bomb vs bomb = draw
- Same moves = draw

Tips:
- You can use natural language: "I choose rock", "throw paper", "scissors please"
- Typos are okay: "rok", "papper" work fine
- Invalid or unclear moves waste your turn
`
