package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/sorriso_backend/config"
	apiclient "github.com/Alijeyrad/sorriso_backend/pkg/client"
)

func NewClientCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Talk to a running sorriso API from the terminal",
	}

	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (defaults to client.base_url from config)")

	newAPI := func(cmd *cobra.Command) (*apiclient.Client, error) {
		cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return nil, err
		}
		cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
		if err != nil {
			return nil, err
		}
		url := cfg.Client.BaseURL
		if baseURL != "" {
			url = baseURL
		}
		return apiclient.New(url, time.Duration(cfg.Client.TimeoutSeconds)*time.Second), nil
	}

	cmd.AddCommand(newHealthCommand(newAPI))
	cmd.AddCommand(newPatientsCommand(newAPI))
	cmd.AddCommand(newRecordsCommand(newAPI))
	cmd.AddCommand(newProgressCommand(newAPI))
	cmd.AddCommand(newReportCommand(newAPI))

	return cmd
}

type apiFactory func(cmd *cobra.Command) (*apiclient.Client, error)

func newHealthCommand(newAPI apiFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			if err := api.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func newReportCommand(newAPI apiFactory) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "report <patient-id>",
		Short: "Print the server-side report for a patient as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			rep, err := api.Report(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			return printJSON(rep)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "restrict to one day (YYYY-MM-DD)")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
