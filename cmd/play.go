package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Flapjacck/pbat/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the arcade menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(func(a *tui.App) error { return a.Run() })
	},
}

var blackjackCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Sit down at the blackjack table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(func(a *tui.App) error { return a.RunBlackjack() })
	},
}

var rouletteCmd = &cobra.Command{
	Use:   "roulette",
	Short: "Sit down at the roulette table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(func(a *tui.App) error { return a.RunRoulette() })
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the text editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runScreen(func(a *tui.App) error { return a.RunEditorFile(name) })
	},
}

func init() {
	RootCmd.AddCommand(playCmd, blackjackCmd, rouletteCmd, editCmd)
}
