package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Judge *struct {
		// Model overrides the default OpenAI chat model.
		Model string `json:"model"`
		// SystemPrompt replaces the built-in judge system prompt. The
		// replacement must describe the same JSON output contract or
		// classification will fail.
		SystemPrompt string `json:"system_prompt"`
	} `json:"judge"`
	Bot *struct {
		// BombProbability is the chance the bot plays its bomb once
		// eligible. Must be within [0, 1].
		BombProbability *float64 `json:"bomb_probability"`
		// MinBombRound is how many rounds must have been played before
		// the bot's bomb becomes eligible.
		MinBombRound *int `json:"min_bomb_round"`
	} `json:"bot"`
	// SessionTTLMinutes controls when idle sessions are expired. An
	// explicit 0 disables the scanner; absent means one hour.
	SessionTTLMinutes *int `json:"session_ttl_minutes"`
}

// LoadedConfig carries the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress     string
	JudgeModel        string
	JudgeSystemPrompt string
	BombProbability   float64
	MinBombRound      int
	SessionTTL        time.Duration
}

// LoadConfig reads the configuration file at path. Every key is optional;
// defaults match the original game tuning (20% bomb chance after two
// rounds, one-hour session TTL).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress:   ":8080",
		BombProbability: 0.2,
		MinBombRound:    2,
		SessionTTL:      time.Hour,
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Judge != nil {
		out.JudgeModel = strings.TrimSpace(rc.Judge.Model)
		out.JudgeSystemPrompt = strings.TrimSpace(rc.Judge.SystemPrompt)
	}
	if rc.Bot != nil {
		if rc.Bot.BombProbability != nil {
			p := *rc.Bot.BombProbability
			if p < 0 || p > 1 {
				return nil, fmt.Errorf("config file %s: bomb_probability %v out of [0,1]", path, p)
			}
			out.BombProbability = p
		}
		if rc.Bot.MinBombRound != nil {
			if *rc.Bot.MinBombRound < 0 {
				return nil, fmt.Errorf("config file %s: min_bomb_round must be >= 0", path)
			}
			out.MinBombRound = *rc.Bot.MinBombRound
		}
	}
	if rc.SessionTTLMinutes != nil {
		if *rc.SessionTTLMinutes < 0 {
			return nil, fmt.Errorf("config file %s: session_ttl_minutes must be >= 0", path)
		}
		out.SessionTTL = time.Duration(*rc.SessionTTLMinutes) * time.Minute
	}
	return out, nil
}
