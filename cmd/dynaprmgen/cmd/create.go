package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynaprm/engine"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/obstacle"
)

var (
	createNumVertices int
	createWidth       float64
	createHeight      float64
	createWorkers     int
	createSeedHex     string
	createObstacles   []string
	createOut         string
)

// createCmd builds a roadmap engine from flags and saves it to disk. It
// does nothing the engine package does not already do; it only adapts
// flags into an engine.Config and a []obstacle.Obstacle.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a roadmap and save it to a file",
	RunE: func(c *cobra.Command, args []string) error {
		seed, err := parseSeed(createSeedHex)
		if err != nil {
			return fmt.Errorf("dynaprmgen: %w", err)
		}

		obstacles, err := parseObstacles(createObstacles)
		if err != nil {
			return fmt.Errorf("dynaprmgen: %w", err)
		}

		cfg := engine.Config{
			NumVertices: createNumVertices,
			Width:       createWidth,
			Height:      createHeight,
			Seed:        seed,
			WorkerCount: createWorkers,
		}

		e, err := engine.Create(context.Background(), cfg, obstacles)
		if err != nil {
			return fmt.Errorf("dynaprmgen: create: %w", err)
		}

		if err := e.Save(createOut); err != nil {
			return fmt.Errorf("dynaprmgen: save: %w", err)
		}

		s := e.Stats()
		fmt.Printf("wrote %s: %d vertices, %d edges (%d free, %d blocked), %d obstacles\n",
			createOut, s.VertexCount, s.EdgeCount, s.FreeEdgeCount, s.BlockedEdgeCount, s.ObstacleCount)

		return nil
	},
}

func init() {
	createCmd.Flags().IntVar(&createNumVertices, "num-vertices", 1000, "number of sampled vertices (N)")
	createCmd.Flags().Float64Var(&createWidth, "width", 100, "configuration rectangle width")
	createCmd.Flags().Float64Var(&createHeight, "height", 100, "configuration rectangle height")
	createCmd.Flags().IntVar(&createWorkers, "workers", 4, "fork-join worker count (W)")
	createCmd.Flags().StringVar(&createSeedHex, "seed", "", "64 hex-character sampler seed (defaults to all zero bytes)")
	createCmd.Flags().StringArrayVar(&createObstacles, "obstacle", nil, "rectangle \"x0,y0,x1,y1\"; may be repeated")
	createCmd.Flags().StringVar(&createOut, "out", "roadmap.bin", "output file path")

	rootCmd.AddCommand(createCmd)
}

func parseSeed(hex string) ([32]byte, error) {
	var seed [32]byte
	if hex == "" {
		return seed, nil
	}

	decoded, err := decodeHex(hex)
	if err != nil {
		return seed, fmt.Errorf("invalid --seed: %w", err)
	}
	if len(decoded) != 32 {
		return seed, fmt.Errorf("invalid --seed: want 32 bytes (64 hex chars), got %d bytes", len(decoded))
	}
	copy(seed[:], decoded)

	return seed, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		b, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(b)
	}

	return out, nil
}

func parseObstacles(raw []string) ([]obstacle.Obstacle, error) {
	obstacles := make([]obstacle.Obstacle, 0, len(raw))
	for _, spec := range raw {
		parts := strings.Split(spec, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid --obstacle %q: want \"x0,y0,x1,y1\"", spec)
		}

		coords := make([]float64, 4)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --obstacle %q: %w", spec, err)
			}
			coords[i] = v
		}

		rect := geom.NewRect(geom.Point{X: coords[0], Y: coords[1]}, geom.Point{X: coords[2], Y: coords[3]})
		obstacles = append(obstacles, obstacle.New(rect))
	}

	return obstacles, nil
}
