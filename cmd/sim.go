package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/strategy"
)

var (
	simGame       string
	simBalance    float64
	simRounds     int
	simDecks      int
	simServerSeed string
	simShowLogs   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script.js>",
	Short: "Run a betting script against a deterministic table",
	Long: `Sim runs a JavaScript betting strategy offline. The script must define
a dobet() function; between calls the engine exposes the usual state
globals (balance, win, nextbet, bets, profit and so on) plus log(),
stop() and sleep().

Outcomes come from the same seeded stream the live tables use, so a run
is reproducible by passing the same --server-seed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}

		server := simServerSeed
		if server == "" {
			if server, err = engine.NewServerSeed(); err != nil {
				return err
			}
		}
		seeds := engine.Seeds{Server: server, Client: "sim"}

		var sim strategy.Simulator
		switch simGame {
		case "roulette":
			sim = strategy.NewRouletteSim(seeds, 0)
		case "blackjack":
			if sim, err = strategy.NewBlackjackSim(simDecks, seeds, 0); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown game %q", simGame)
		}

		eng := strategy.NewEngine(sim)
		stats, err := eng.Run(cmd.Context(), string(script), simBalance, simRounds)
		if err != nil {
			return err
		}

		if simShowLogs {
			for _, entry := range eng.Logs() {
				fmt.Printf("[%s] %s\n", entry.Time.Format("15:04:05.000"), entry.Message)
			}
			fmt.Println()
		}
		printStats(stats, server)
		return nil
	},
}

func printStats(s *strategy.Statistics, serverSeed string) {
	bold := color.New(color.Bold)
	bold.Println("simulation finished")
	fmt.Printf("server seed      %s\n", serverSeed)
	fmt.Printf("rounds           %d (%d won, %d lost, %d pushed)\n", s.Bets, s.Wins, s.Losses, s.Pushes)
	fmt.Printf("wagered          %.2f\n", s.Wagered)
	fmt.Printf("balance          %.2f (started %.2f)\n", s.Balance, s.StartBal)
	fmt.Printf("streaks          best %d wins, worst %d losses\n", s.WinStreak, s.LoseStreak)
	fmt.Printf("highest bet      %.2f\n", s.HighestBet)
	fmt.Printf("profit range     %.2f .. %.2f\n", s.LowestProfit, s.HighestProfit)

	switch {
	case s.Profit > 0:
		color.Green("profit           +%.2f", s.Profit)
	case s.Profit < 0:
		color.Red("profit           %.2f", s.Profit)
	default:
		fmt.Println("profit           0.00")
	}
}

func init() {
	simCmd.Flags().StringVar(&simGame, "game", "roulette", "game to simulate (roulette, blackjack)")
	simCmd.Flags().Float64Var(&simBalance, "balance", 100, "starting balance")
	simCmd.Flags().IntVar(&simRounds, "rounds", 1000, "maximum rounds to play")
	simCmd.Flags().IntVar(&simDecks, "decks", 1, "decks in the shoe (blackjack)")
	simCmd.Flags().StringVar(&simServerSeed, "server-seed", "", "server seed for a reproducible run")
	simCmd.Flags().BoolVar(&simShowLogs, "logs", false, "print script log() output")
	RootCmd.AddCommand(simCmd)
}
