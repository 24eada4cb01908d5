package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/pkg/logger"
)

func main() {
	// ========================================
	// LOAD CONFIGURATION
	// ========================================
	// Load từ .env file (development/local) rồi environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// ========================================
	// SETUP LOGGER + GIN MODE
	// ========================================
	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("env", cfg.App.Environment).Str("version", cfg.App.Version).Msg("Starting blog API")

	// ========================================
	// START SERVER
	// ========================================
	// Delegate toàn bộ logic sang Serve()
	Serve(cfg)
}
