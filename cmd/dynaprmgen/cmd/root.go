package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command, mirroring a cobra CLI's usual
// shape: a no-op root plus subcommands that each do one thing.
var rootCmd = &cobra.Command{
	Use:   "dynaprmgen",
	Short: "Build and persist dynamic PRM roadmaps",
	Long: `dynaprmgen builds a roadmap engine from a configuration and an
optional set of rectangular obstacles, and saves it to a single binary
file. It is a thin shell around the engine package and implements no
roadmap logic itself.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
