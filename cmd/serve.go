package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Flapjacck/pbat/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session history and verification API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		srv := api.NewServer(db)
		fmt.Printf("listening on %s\n", serveAddr)
		return http.ListenAndServe(serveAddr, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8099", "listen address")
	RootCmd.AddCommand(serveCmd)
}
