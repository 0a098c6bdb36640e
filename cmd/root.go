// Package cmd holds the pbat command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pbat",
	Short: "A terminal arcade: blackjack, roulette and a text editor",
	Long: `pbat is a terminal arcade cabinet with provably fair games.
Every shuffle and spin is derived from a per-session server seed and your
configured client seed, so any session in the history can be verified
after the fact.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
