package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/logger"
)

func main() {
	// .env is optional; production uses the process environment
	envFileErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid configuration")
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envFileErr != nil {
		log.Warn().Msg("⚠️  No .env file found, using system environment variables")
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("🌍 Starting "+cfg.App.Name, map[string]interface{}{
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
	})

	if err := Serve(cfg); err != nil {
		log.Error().Err(err).Msg("❌ Server stopped with error")
		os.Exit(1)
	}
}
