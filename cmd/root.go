package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/athletiq/athletiq_backend/cmd/http"
	systemcmd "github.com/athletiq/athletiq_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "athletiq",
	Short: "AthletIQ injury case backend for athletes, team doctors and staff.",
	Long: `AthletIQ is the injury reporting backend connecting athletes with their
team doctors. Athletes open injury cases, doctors respond and file medical
assessments, and staff oversee the full case lifecycle.`,
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

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
