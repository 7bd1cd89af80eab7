package http

import "github.com/spf13/cobra"

func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Diary REST API server",
		Long: `Serve the diary REST API (patients, daily records, odontogram and reports)
on server.port, backed by the configured storage driver.`,
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
