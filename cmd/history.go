package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Flapjacck/pbat/internal/store"
)

var (
	historyGame    string
	historyPage    int
	historyPerPage int
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List past sessions, or the rounds of one session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if len(args) == 1 {
			return printRounds(db, args[0])
		}
		return printSessions(db)
	},
}

func printSessions(db store.DB) error {
	list, err := db.ListSessions(store.SessionsQuery{
		Game:    historyGame,
		Page:    historyPage,
		PerPage: historyPerPage,
	})
	if err != nil {
		return err
	}
	if list.TotalCount == 0 {
		fmt.Println("no sessions recorded yet")
		return nil
	}

	bold := color.New(color.Bold)
	bold.Printf("%-36s  %-9s  %6s  %10s  %10s  %s\n",
		"SESSION", "GAME", "ROUNDS", "START", "END", "PLAYED")
	for _, s := range list.Sessions {
		profit := s.BankrollEnd.Sub(s.BankrollStart)
		line := fmt.Sprintf("%-36s  %-9s  %6d  %10s  %10s  %s",
			s.ID, s.Game, s.Rounds,
			s.BankrollStart.String(), s.BankrollEnd.String(),
			s.CreatedAt.Format("2006-01-02 15:04"))
		switch {
		case profit.IsPositive():
			color.Green(line)
		case profit.IsNegative():
			color.Red(line)
		default:
			fmt.Println(line)
		}
	}
	fmt.Printf("\npage %d/%d, %d sessions\n", list.Page, list.TotalPages, list.TotalCount)
	return nil
}

func printRounds(db store.DB, sessionID string) error {
	session, err := db.GetSession(sessionID)
	if err != nil {
		return err
	}
	page, err := db.GetSessionRounds(sessionID, historyPage, historyPerPage)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Printf("%s session %s\n", session.Game, session.ID)
	fmt.Printf("server seed hash %s\nclient seed %q\n\n", session.ServerSeedHash, session.ClientSeed)

	bold.Printf("%-6s  %8s  %8s  %8s  %-8s\n", "NONCE", "BET", "PAYOUT", "METRIC", "RESULT")
	for _, r := range page.Rounds {
		fmt.Printf("%-6d  %8s  %8s  %8.0f  %-8s\n",
			r.Nonce, r.Bet.String(), r.Payout.String(), r.Metric, r.Result)
	}
	fmt.Printf("\npage %d/%d, %d rounds\n", page.Page, page.TotalPages, page.TotalCount)
	return nil
}

func init() {
	historyCmd.Flags().StringVar(&historyGame, "game", "", "filter sessions by game id")
	historyCmd.Flags().IntVar(&historyPage, "page", 1, "page number")
	historyCmd.Flags().IntVar(&historyPerPage, "per-page", 25, "rows per page")
	RootCmd.AddCommand(historyCmd)
}
