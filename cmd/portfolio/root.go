package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a persisted light/dark theme",
	Long: `portfolio serves a single-page personal portfolio. Each browser's theme
choice is stored durably and restored on its next visit.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
