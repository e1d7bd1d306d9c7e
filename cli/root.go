// Package cli wires the cobra commands around the data-management layer.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"Ludex/config"
	"Ludex/database"
	"Ludex/logging"
)

var (
	flagDBPath   string
	flagLogLevel string
)

// app bundles the per-invocation dependencies every command needs.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	mgr *database.Manager
}

// setup loads the config, applies flag overrides and opens the store.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.DatabasePath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	log := logging.New(cfg.LogLevel)

	mgr, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, mgr: mgr}, nil
}

func (a *app) close() {
	if err := a.mgr.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing database")
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ludex",
		Short: "Data-management tool for the video-game catalog",
		Long: `ludex manages the video-game catalog database: one-time
initialization, bulk CSV catalog loading, and synthetic user generation
with privacy-preserving credential storage.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database file path (env: LUDEX_DATABASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (env: LUDEX_LOG_LEVEL)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newUsersCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
