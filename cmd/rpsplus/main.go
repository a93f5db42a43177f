package main

import (
	"os"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/api"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/constants"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/engine"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/judge"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/logging"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	if os.Getenv(constants.EnvOpenAIAPIKey) == "" {
		// The server still starts; play endpoints answer 503 until the
		// key is provided.
		logging.Warn("OPENAI_API_KEY not set; move classification disabled", nil)
	}

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./rpsplus_config.json"
	}
	cfg := loadConfigOrExit(configPath)
	applyPromptTemplates(cfg)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/rpsplus.db"
	}
	repo := createRepositoryOrExit(dbPath)

	strategy := engine.NewRandomStrategy(nil)
	strategy.BombProbability = cfg.BombProbability
	strategy.MinBombRound = cfg.MinBombRound

	svc := service.NewGameService(repo, judge.NewOpenAIJudge(cfg.JudgeModel), strategy)
	handler := api.NewGameHandler(svc)

	if cfg.SessionTTL > 0 {
		startExpiryScanner(repo, cfg.SessionTTL)
	}

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteGames, handler.StartGame)
		apiRoutes.GET(constants.RouteGames, handler.ListSessions)
		apiRoutes.POST(constants.RouteGamePlay, handler.PlayMove)
		apiRoutes.GET(constants.RouteGameBySession, handler.GetState)
		apiRoutes.DELETE(constants.RouteGameBySession, handler.EndGame)
		apiRoutes.GET(constants.RouteRules, handler.GetRules)
	}
	router.GET(constants.RouteHealth, handler.Health)
	router.GET(constants.RouteVersion, api.Version)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
