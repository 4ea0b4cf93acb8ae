// orbit is a terminal dodge-and-score game played on concentric rings.
//
// Usage:
//
//	orbit list               - List available game modes
//	orbit play [mode]        - Play a mode (default: orbit)
//	orbit scores <mode>      - Show high scores for a mode
//	orbit runs <mode>        - Show recent runs with seeds and stats
//	orbit replay <run-id>    - Export a run's replay GIF to a file
//	orbit serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.orbit/orbit.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the simulation package to register its game modes
	_ "github.com/vovakirdan/orbit-rush/internal/sim"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Orbit Rush - dodge hazards on concentric rings",
	Long: `Orbit Rush is a terminal arcade game: steer a ship around concentric
rings, dodge hazards, shave past them for multiplier bonuses, and grab
power-ups before the orbits fill up.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  scores   - View high scores
  runs     - View recent runs (seed, level, near misses)
  replay   - Export a saved run's replay GIF
  serve    - Start SSH server for remote play

Examples:
  orbit play
  orbit play orbit_challenge --seed 42
  orbit scores orbit
  orbit replay 17 -o best-run.gif
  orbit serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbit/orbit.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
