package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jasspatience/internal/config"
	"jasspatience/internal/game"
)

// colorTracer writes board diagnostics to the terminal.
type colorTracer struct {
	prefix *color.Color
}

func (t colorTracer) Tracef(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", t.prefix.Sprint("[#]"), fmt.Sprintf(format, args...))
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single round and show the board after each turn",
	Long: `Play deals and resolves the nine turns of one round, printing removal
counts, move decisions and a board snapshot after every turn, then the final
leftover-card count.

A fixed --seed replays the same shuffle; seed 0 derives one from the clock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		quiet := cfg.Quiet
		if cmd.Flags().Changed("quiet") {
			quiet, _ = cmd.Flags().GetBool("quiet")
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		var trace game.Tracer = game.NopTracer
		if !quiet {
			trace = colorTracer{prefix: color.New(color.FgYellow)}
		}

		g := game.NewGame(seed, trace)
		leftover, err := g.PlayRound()
		if err != nil {
			return fmt.Errorf("round aborted: %v", err)
		}

		fmt.Printf("Seed:     %d\n", seed)
		fmt.Printf("Leftover: %s\n", color.New(color.Bold).Sprintf("%d cards", leftover))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64P("seed", "s", 0, "Shuffle seed (0 = derive from current time)")
	playCmd.Flags().BoolP("quiet", "q", false, "Suppress per-turn diagnostics")
}
