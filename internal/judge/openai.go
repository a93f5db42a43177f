package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/constants"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/logging"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
)

// OpenAIJudge calls the OpenAI Chat Completions API with the judge system
// prompt and a per-turn context prompt, expecting a single JSON object back.
type OpenAIJudge struct {
	// Model overrides constants.OpenAIChatModel when non-empty.
	Model string

	client *http.Client
}

// NewOpenAIJudge builds the default judge with a strict request timeout.
func NewOpenAIJudge(model string) *OpenAIJudge {
	return &OpenAIJudge{
		Model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ready reports whether the OpenAI API key is configured.
func (j *OpenAIJudge) Ready() bool {
	return os.Getenv(constants.EnvOpenAIAPIKey) != ""
}

func (j *OpenAIJudge) model() string {
	if j.Model != "" {
		return j.Model
	}
	return constants.OpenAIChatModel
}

// ClassifyMove implements Judge.
func (j *OpenAIJudge) ClassifyMove(ctx context.Context, rawInput string, turn prompts.TurnContext) (game.MoveInterpretation, error) {
	apiKey := os.Getenv(constants.EnvOpenAIAPIKey)
	if apiKey == "" {
		return game.MoveInterpretation{}, fmt.Errorf("%s not set", constants.EnvOpenAIAPIKey)
	}

	payload := map[string]interface{}{
		"model": j.model(),
		"messages": []map[string]string{
			{"role": "system", "content": prompts.SystemPrompt()},
			{"role": "user", "content": prompts.IntentPrompt(rawInput, turn)},
		},
		"temperature":     constants.OpenAITemperature,
		"response_format": map[string]string{"type": "json_object"},
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", constants.OpenAIBaseURL+constants.OpenAIChatCompletionsPath, bytes.NewBuffer(b))
	if err != nil {
		return game.MoveInterpretation{}, err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	resp, err := j.client.Do(req)
	if err != nil {
		return game.MoveInterpretation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return game.MoveInterpretation{}, fmt.Errorf("openai error: %d %s", resp.StatusCode, string(body))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return game.MoveInterpretation{}, fmt.Errorf("failed to decode OpenAI response: %w", err)
	}
	if len(out.Choices) == 0 {
		return game.MoveInterpretation{}, fmt.Errorf("empty response from OpenAI")
	}

	interp, err := ParseInterpretation(out.Choices[0].Message.Content)
	if err != nil {
		logging.Error("judge returned unparseable content", err, logging.Fields{"content": out.Choices[0].Message.Content})
		return game.MoveInterpretation{}, err
	}
	interp.RawInput = rawInput
	return interp, nil
}

// ParseInterpretation decodes the model's JSON reply into a
// MoveInterpretation and normalizes it: classification upper-cased and
// checked, move lower-cased and checked, and the move dropped unless the
// classification is VALID. Markdown code fences around the JSON are
// tolerated.
func ParseInterpretation(content string) (game.MoveInterpretation, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw struct {
		Classification  string  `json:"classification"`
		InterpretedMove *string `json:"interpreted_move"`
		Reasoning       string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return game.MoveInterpretation{}, fmt.Errorf("invalid judge JSON: %w", err)
	}

	classification := game.Classification(strings.ToUpper(strings.TrimSpace(raw.Classification)))
	if !classification.Known() {
		return game.MoveInterpretation{}, fmt.Errorf("unknown classification %q", raw.Classification)
	}

	interp := game.MoveInterpretation{
		Classification: classification,
		Reasoning:      strings.TrimSpace(raw.Reasoning),
	}

	if classification == game.ClassificationValid {
		if raw.InterpretedMove == nil {
			return game.MoveInterpretation{}, fmt.Errorf("VALID classification without interpreted_move")
		}
		move, ok := game.ParseMove(*raw.InterpretedMove)
		if !ok {
			return game.MoveInterpretation{}, fmt.Errorf("unknown move %q", *raw.InterpretedMove)
		}
		interp.InterpretedMove = &move
	}
	return interp, nil
}
