package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "library-api",
	Short: "REST API for authors, books, biographies and events",
	Long: `library-api serves the library catalogue over HTTP.

Run without a subcommand to start the server. Configuration is read from
the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logger.Init(cfg.App.Environment, cfg.App.LogLevel)
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve(cfg)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve(cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations and exit",
	RunE:  runMigrate,
}

func init() {
	serveCmd.Flags().StringVarP(&portOverride, "port", "p", "", "Listen port (overrides APP_PORT)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.Store.Driver != config.DriverPostgres {
		log.Info().Str("store", cfg.Store.Driver).Msg("Nothing to migrate for this store driver")
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return database.Migrate(ctx, db.Pool)
}
