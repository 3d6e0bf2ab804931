package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynaprm/engine"
)

var statsPath string

// statsCmd loads a previously-saved roadmap and prints its size counters,
// exercising engine.Load the way createCmd exercises engine.Save.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Load a roadmap file and print its size counters",
	RunE: func(c *cobra.Command, args []string) error {
		e, err := engine.Load(statsPath)
		if err != nil {
			return fmt.Errorf("dynaprmgen: load: %w", err)
		}

		s := e.Stats()
		fmt.Printf("vertices=%d edges=%d free=%d blocked=%d obstacles=%d\n",
			s.VertexCount, s.EdgeCount, s.FreeEdgeCount, s.BlockedEdgeCount, s.ObstacleCount)

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsPath, "in", "roadmap.bin", "roadmap file to load")
	rootCmd.AddCommand(statsCmd)
}
