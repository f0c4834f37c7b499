package command

import (
	"github.com/spf13/cobra"

	"github.com/tidepool-org/roster/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the roster service",
	Long:  "The serve command starts the HTTP API and blocks until the process is stopped",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.MainLoop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
