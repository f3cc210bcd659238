package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var serverFlag string

	rootCmd := &cobra.Command{
		Use:           "lovefi",
		Short:         "Mood-to-music recommender for lo-fi listeners",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "http://localhost:3001", "Base URL of the lovefi API server")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMoodCommand(&serverFlag))
	rootCmd.AddCommand(newSurpriseCommand(&serverFlag))
	rootCmd.AddCommand(newRadioCommand(&serverFlag))

	return rootCmd
}
