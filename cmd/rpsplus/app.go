package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/config"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/logging"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/prompts"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/service"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file is fine; run on defaults.
			logging.Info("no config file found; using defaults", logging.Fields{"config_path": path})
			return &config.LoadedConfig{
				ServerAddress:   ":8080",
				BombProbability: 0.2,
				MinBombRound:    2,
				SessionTTL:      time.Hour,
			}
		}
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func applyPromptTemplates(cfg *config.LoadedConfig) {
	if cfg == nil {
		return
	}
	if cfg.JudgeSystemPrompt != "" {
		prompts.SetSystemPrompt(cfg.JudgeSystemPrompt)
	}
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{"path": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}

// startExpiryScanner periodically removes sessions that have been idle for
// longer than ttl so abandoned games do not pile up in the store.
func startExpiryScanner(repo storage.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := service.ExpireIdleSessions(repo, ttl, time.Now()); err != nil {
				logging.Error("session expiry scanner failed", err, nil)
			}
		}
	}()
}
