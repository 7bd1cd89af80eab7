package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clientcmd "github.com/Alijeyrad/sorriso_backend/cmd/client"
	httpcmd "github.com/Alijeyrad/sorriso_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/sorriso_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sorriso",
	Short: "Sorriso daily dental diary for children in pediatric care.",
	Long: `Sorriso keeps a daily diary of oral hygiene, behaviour and odontogram
findings for pediatric dental patients, and turns it into progress reports.
It ships the REST API, maintenance tooling and a terminal client in one binary.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(clientcmd.NewClientCommand())
}
