package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jasspatience/internal/config"
	"jasspatience/internal/simulation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many rounds and chart the leftover-card distribution",
	Long: `Simulate plays a batch of independent rounds sequentially, each with its
own shuffle, then prints summary statistics and a histogram of how many cards
were left on the board.

Flag defaults are read from the config file (see --help of the root command);
a fixed --seed makes the whole batch reproducible.

Examples:
  jasspatience simulate --trials 100000
  jasspatience simulate --trials 5000 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		trials := cfg.Trials
		if cmd.Flags().Changed("trials") {
			trials, _ = cmd.Flags().GetInt("trials")
		}
		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}
		width := cfg.HistogramWidth
		if cmd.Flags().Changed("width") {
			width, _ = cmd.Flags().GetInt("width")
		}

		if trials <= 0 {
			return fmt.Errorf("trials must be positive, got %d", trials)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		if width <= 0 {
			width = terminalBarWidth()
		}

		start := time.Now()
		stats := simulation.RunBatch(trials, seed)
		elapsed := time.Since(start)

		bold := color.New(color.Bold)
		fmt.Printf("Trials:   %d (seed %d, %.1fs)\n", stats.TotalTrials, seed, elapsed.Seconds())
		if stats.Errors > 0 {
			fmt.Printf("Errors:   %d\n", stats.Errors)
		}
		fmt.Printf("Mean:     %s\n", bold.Sprintf("%.2f cards left", stats.MeanLeftover))
		fmt.Printf("Median:   %d\n", stats.MedianLeftover)
		fmt.Printf("Range:    %d-%d\n", stats.MinLeftover, stats.MaxLeftover)
		fmt.Println()
		fmt.Print(simulation.RenderHistogram(stats, width))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntP("trials", "n", 10000, "Number of rounds to play")
	simulateCmd.Flags().Int64P("seed", "s", 0, "Batch seed (0 = derive from current time)")
	simulateCmd.Flags().IntP("width", "w", 0, "Histogram bar width (0 = fit terminal)")
}

// terminalBarWidth sizes histogram bars to the terminal, leaving room for the
// row label and count columns.
func terminalBarWidth() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 20 {
		return simulation.DefaultHistogramWidth
	}
	return cols - 20
}
