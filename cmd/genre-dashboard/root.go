package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genre-dashboard",
		Short: "Spotify genre dashboard with model comparison and genre prediction",
		Long: `Genre dashboard serves charts over a Spotify track dataset and predicts
a song's genre with a classifier trained offline.

Run "genre-dashboard serve" to start the web interface.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd())

	return cmd
}
