package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/schedlint/internal/config"
	"github.com/blackwell-systems/schedlint/internal/output"
	"github.com/blackwell-systems/schedlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective rule set",
	Long: `Print the validation rules that check would apply, after merging
configuration overrides onto the built-in defaults.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	ruleset := cfg.EffectiveRules()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ruleset)
	}

	fmt.Println(output.Section("Validation Rules"))
	fmt.Println()

	table := output.NewTable("ID", "Category", "Severity", "Enabled", "Parameters")
	for _, r := range ruleset {
		enabled := "yes"
		if !r.Enabled {
			enabled = "no"
		}
		table.AddRow(r.ID, string(r.Category), string(r.Severity), enabled, paramSummary(r))
	}
	table.Print()
	return nil
}

// paramSummary renders only the parameters a rule actually reads.
func paramSummary(r rules.Rule) string {
	p := r.Params
	switch r.ID {
	case rules.RuleMeetingBuffer:
		return fmt.Sprintf("buffer=%dm", p.BufferMinutes)
	case rules.RuleWorkloadLimit:
		return fmt.Sprintf("max_per_day=%d", p.MaxEventsPerDay)
	case rules.RuleDurationValidation:
		return fmt.Sprintf("min=%dm max=%dm", p.MinDurationMinutes, p.MaxDurationMinutes)
	case rules.RuleLocationGrouping:
		return fmt.Sprintf("max_gap=%dm", p.MaxGapMinutes)
	case rules.RuleBreakRequirement:
		return fmt.Sprintf("threshold=%dm break=%dm", p.WorkMinutesThreshold, p.RequiredBreakMinutes)
	default:
		return ""
	}
}
