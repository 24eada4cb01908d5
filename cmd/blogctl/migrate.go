package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
)

func init() {
	var listOnly bool

	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations",
		Run: func(cmd *cobra.Command, args []string) {
			if listOnly {
				migrations, err := database.LoadMigrations()
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to load migrations")
				}
				for _, m := range migrations {
					fmt.Println(m.Version)
				}
				return
			}

			cfg := mustLoadConfig()
			if cfg.Storage.Driver != config.StoragePostgres {
				log.Fatal().Str("driver", cfg.Storage.Driver).Msg("migrate needs STORAGE_DRIVER=postgres")
			}

			dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
			if err != nil {
				log.Fatal().Err(err).Msg("Invalid database config")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			db := database.NewPostgresDB(dbConfig)
			if err := db.Connect(ctx); err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to database")
			}
			defer db.Close()

			applied, err := database.Migrate(ctx, db.Pool)
			if err != nil {
				log.Fatal().Err(err).Msg("Migration failed")
			}

			if len(applied) == 0 {
				fmt.Println("Database is up to date")
				return
			}
			for _, version := range applied {
				fmt.Printf("Applied %s\n", version)
			}
		},
	}
	migrateCommand.Flags().BoolVar(&listOnly, "list", false, "Only list the embedded migrations")

	rootCommand.AddCommand(migrateCommand)
}
