package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/schedlint/internal/config"
	"github.com/blackwell-systems/schedlint/internal/output"
	"github.com/blackwell-systems/schedlint/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved validation runs",
	Long:  `Show past validation runs recorded with 'check --save', newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs. Use 'schedlint check --save' to record one.")
		return nil
	}

	fmt.Println(output.Section("Validation History"))
	fmt.Println()

	table := output.NewTable("When", "Source", "Score", "Status", "Events", "Violations")
	for _, r := range runs {
		table.AddRow(
			r.RanAt.Local().Format("2006-01-02 15:04"),
			r.Source,
			fmt.Sprintf("%d", r.Score),
			r.Status,
			fmt.Sprintf("%d", r.EventCount),
			fmt.Sprintf("%d", r.ViolationCount),
		)
	}
	table.Print()
	return nil
}
