// Package app contains the Cobra command tree for schedlint.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "schedlint",
	Short: "Validate calendar schedules and plan new events",
	Long: `schedlint checks a calendar for conflicts, workload overload, missing
buffers, bad durations, and missing breaks, and greedily places new events
into the first free slot that respects buffers.

Events are read from iCalendar (.ics) files. Rule severities and parameters
can be overridden in ~/.config/schedlint/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("schedlint", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  check     Validate a schedule and report violations")
		fmt.Println("  plan      Place new events into free slots")
		fmt.Println("  rules     Show the effective rule set")
		fmt.Println("  history   List saved validation runs")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/schedlint/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
