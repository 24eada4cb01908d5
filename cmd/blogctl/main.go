package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/pkg/logger"
)

var rootCommand = &cobra.Command{
	Use:   "blogctl",
	Short: "Operator commands for the blog API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	},
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustLoadConfig exits when the environment is not a valid configuration
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	return cfg
}
