package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit-rush/internal/registry"
	"github.com/vovakirdan/orbit-rush/internal/storage"
)

var (
	flagRunsLimit int
	flagReplayOut string
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show recent runs for a mode",
	Long: `Display the most recent runs for the specified mode (default: orbit),
including the spawn seed, final level, near misses, and which specials
fired. Runs with a recorded replay are marked; export them with
'orbit replay <run-id>'.

The seed of a good run can be replayed directly:
  orbit play orbit_challenge --seed <seed>

Examples:
  orbit runs
  orbit runs orbit_challenge --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Export a run's replay GIF",
	Long: `Write the replay GIF recorded for the given run to a file.

Find run IDs with 'orbit runs'. Not every run has a replay: recording
can be disabled by config or by the ORBIT_NO_REPLAY environment
variable.

Examples:
  orbit replay 17
  orbit replay 17 -o best-run.gif`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	replayCmd.Flags().StringVarP(&flagReplayOut, "out", "o", "", "Output file (default: run-<id>.gif)")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := "orbit"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'orbit list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-5s  %-8s  %-6s  %-20s  %-10s  %s\n",
		"ID", "Score", "Lvl", "Time", "NearM", "Seed", "Specials", "Date")
	for _, r := range runs {
		specials := strings.Join(r.Specials, ",")
		if specials == "" {
			specials = "-"
		}
		fmt.Printf("  %-5d  %-8d  %-5d  %-8s  %-6d  %-20d  %-10s  %s\n",
			r.ID, r.Score, r.Level, fmt.Sprintf("%.1fs", r.DurationSecs),
			r.NearMisses, r.Seed, specials, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %d (run %d, seed %d)\n", best.Score, best.ID, best.Seed)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gif, err := store.RunReplay(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replay: %v\n", err)
		os.Exit(1)
	}
	if len(gif) == 0 {
		fmt.Fprintf(os.Stderr, "Run %d has no recorded replay.\n", runID)
		os.Exit(1)
	}

	out := flagReplayOut
	if out == "" {
		out = fmt.Sprintf("run-%d.gif", runID)
	}

	if err := os.WriteFile(out, gif, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(gif))
}
