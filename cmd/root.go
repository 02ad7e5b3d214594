package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "jasspatience",
	Short: "Simulator for a four-slot Jass patience",
	Long: `Jasspatience plays a single-player elimination patience with a 36-card
Swiss Jass deck: each turn deals one card onto each of four slots, then the
lower of any two same-suit top cards is removed until the board is stable,
relocating top cards into freed slots where a look-ahead says it pays off.

The simulate command replays the game many times to estimate the
distribution of leftover cards.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
