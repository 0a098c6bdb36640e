package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/games"
)

var (
	verifyGame       string
	verifyServerSeed string
	verifyClientSeed string
	verifyNonce      uint64
	verifyDecks      int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay an outcome from revealed seeds",
	Long: `Verify recomputes a game outcome from a revealed server seed, a client
seed and a nonce. The seed's hash must match the session's stored
server_seed_hash for the replay to prove anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		game, ok := games.Get(verifyGame)
		if !ok {
			return fmt.Errorf("unknown game %q", verifyGame)
		}
		seeds := engine.Seeds{Server: verifyServerSeed, Client: verifyClientSeed}

		params := map[string]any{}
		if verifyGame == "blackjack" {
			params["decks"] = float64(verifyDecks)
		}
		outcome, err := game.Replay(seeds, verifyNonce, params)
		if err != nil {
			return err
		}

		fmt.Printf("server seed hash: %s\n", seeds.ServerHash())
		fmt.Printf("%s: %g\n", outcome.MetricLabel, outcome.Metric)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome.Details)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyGame, "game", "", "game id (blackjack, roulette)")
	verifyCmd.Flags().StringVar(&verifyServerSeed, "server-seed", "", "revealed server seed")
	verifyCmd.Flags().StringVar(&verifyClientSeed, "client-seed", "", "client seed")
	verifyCmd.Flags().Uint64Var(&verifyNonce, "nonce", 0, "shuffle or spin nonce")
	verifyCmd.Flags().IntVar(&verifyDecks, "decks", 1, "decks in the shoe (blackjack)")
	verifyCmd.MarkFlagRequired("game")
	verifyCmd.MarkFlagRequired("server-seed")
	verifyCmd.MarkFlagRequired("client-seed")
	RootCmd.AddCommand(verifyCmd)
}
