package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-market.com/task-market/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-market",
	Short:         "Task-for-coins marketplace service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment.
func loadConfig() (config.Config, bool, error) {
	envLoaded := godotenv.Load() == nil
	cfg, err := config.Load()
	return cfg, envLoaded, err
}
