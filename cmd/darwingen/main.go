// Package main implements the darwingen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"darwingen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "darwingen",
	Short: "Darwin multi-arch source and header generator",
	Long:  `darwingen stages guarded per-architecture sources, runs configure per target, and synthesizes fat umbrella headers for iOS, tvOS and macOS builds.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
