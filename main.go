package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"train-induction-ai/config"
	"train-induction-ai/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "induction",
	Short: "Trainset fleet backend for nightly induction planning",
	Long: `induction serves the trainset fleet from a local database and forwards
induction plan requests (trains, rules, weights) to a Gemini model.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		cfg = config.Load()

		var err error
		log, err = logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
