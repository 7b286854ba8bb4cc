package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/internal/config"
	"github.com/salesops/salesdesk/internal/session"
	"github.com/salesops/salesdesk/internal/tui"
)

var apiURL string

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salesdesk",
		Short: "Terminal client for the sales ERP backend",
		Long: `salesdesk is a terminal client for the sales ERP backend: role-based
dashboards for managers and executives, plus a natural-language command
console for automating sales operations.`,
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides SALESDESK_API_URL)")
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewSendCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the backend client from env config plus the flag override.
func newClient() *api.Client {
	cfg := config.Load()
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	return api.NewClient(cfg.APIBaseURL, cfg.Timeout)
}

func runTUI(cmd *cobra.Command, args []string) error {
	client := newClient()
	store := session.New()

	if err := tui.Run(client, store); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
