package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gsoscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gsoscan",
		Short: "GSO visibility scoring for marketing websites",
		Long: `gsoscan scores how visible a website is to AI assistants and
generative search engines (GSO: Generative Search Optimization).

It fetches the site's content through a tiered crawler chain, extracts
structural and trust signals, and scores ten visibility dimensions
against industry benchmarks. When no content can be fetched, a
deterministic fallback produces stable estimated scores.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
