// Package main implements the entry point for the Polyglot API server,
// a language-learning backend that turns LLM completions into translations,
// lessons, practice exercises and tutoring conversations.
//
//	@title			Polyglot API
//	@version		1.0
//	@description	Language-learning backend: translation, lessons, practice, tutoring chat and captions.
//	@BasePath		/api
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/polyglot-api/internal/config"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "polyglot",
	Short:         "Language-learning API server",
	Long:          "Polyglot serves LLM-backed translation, lessons, practice and tutoring over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./polyglot.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(languagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadDotEnv reads ./.env into the process environment when present.
// Variables already set take precedence.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// initializeApp loads configuration and sets up logging.
func initializeApp(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"llm_model", cfg.LLM.Model,
		"history_enabled", cfg.History.Enabled)

	return cfg, l, nil
}
