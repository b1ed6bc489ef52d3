// Package cli implements the starchase command tree.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starchase",
		Short: "Star Chase trivia board game",
		Long: `starchase runs the Star Chase trivia board game.

The serve command starts the JSON API server, simulate runs a full
bots-only game in process, and health checks a running server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cmd.Flags())
			return err
		},
		SilenceUsage: true,
	}

	// Global flags; every flag can also be set via STARCHASE_* env vars
	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "Server URL for client commands")
	rootCmd.PersistentFlags().String("host", "", "Host interface to bind")
	rootCmd.PersistentFlags().Int("port", 8080, "Port to listen on")
	rootCmd.PersistentFlags().String("storage-type", "memory", "Storage backend: memory or redis")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis connection URL (required for redis storage)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger with JSON output
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
