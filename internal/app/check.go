package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/schedlint/internal/config"
	"github.com/blackwell-systems/schedlint/internal/health"
	"github.com/blackwell-systems/schedlint/internal/ics"
	"github.com/blackwell-systems/schedlint/internal/output"
	"github.com/blackwell-systems/schedlint/internal/quickfix"
	"github.com/blackwell-systems/schedlint/internal/rules"
	"github.com/blackwell-systems/schedlint/internal/store"
)

var (
	checkStrict bool
	checkSave   bool
	checkFixes  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file.ics> [more.ics ...]",
	Short: "Validate a schedule and report violations",
	Long: `Load events from one or more iCalendar files, evaluate the enabled
validation rules against them, and report violations together with an
overall schedule health score.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when error-severity violations exist")
	checkCmd.Flags().BoolVar(&checkSave, "save", false, "Record this run in the history database")
	checkCmd.Flags().BoolVar(&checkFixes, "fixes", true, "Show quick-fix suggestions per violation")
	rootCmd.AddCommand(checkCmd)
}

// checkReport is the JSON shape emitted by --json.
type checkReport struct {
	EventCount int                    `json:"event_count"`
	Result     rules.ValidationResult `json:"result"`
	Health     health.Health          `json:"health"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	events, err := ics.LoadFiles(args, ics.DefaultWindow(time.Now()))
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	engine := rules.NewEngine()
	result, err := engine.Validate(events, cfg.EffectiveRules())
	if err != nil {
		return err
	}
	h := health.Score(result.Violations)

	if checkSave {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer db.Close()
		if _, err := db.SaveRun(strings.Join(args, ","), len(events), result, h); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(checkReport{EventCount: len(events), Result: result, Health: h}); err != nil {
			return err
		}
	} else {
		renderCheck(len(events), result, h)
	}

	if checkStrict && h.Status == health.StatusCritical {
		return fmt.Errorf("schedule has error-severity violations")
	}
	return nil
}

func renderCheck(eventCount int, result rules.ValidationResult, h health.Health) {
	fmt.Println(output.Section("Schedule Health"))
	fmt.Println()
	fmt.Printf(" Status: %s   Score: %s   Events: %d\n",
		output.StatusLabel(h.Status), output.StyleBold.Render(fmt.Sprintf("%d/100", h.Score)), eventCount)
	fmt.Printf(" %s\n", h.Summary)
	fmt.Println()

	if result.Valid {
		fmt.Println(" No violations. Your schedule looks good!")
		return
	}

	fmt.Println(output.Section("Violations"))
	fmt.Println()
	for i, v := range result.Violations {
		fmt.Printf(" #%d %s %s\n", i+1, output.SeverityLabel(v.Severity), output.StyleBold.Render(v.RuleName))
		fmt.Printf("    %s\n", v.Message)
		if checkFixes {
			for _, fix := range quickfix.SuggestionsFor(v) {
				fmt.Printf("    %s %s\n", output.StyleMuted.Render("fix:"), fix)
			}
		}
		fmt.Println()
	}
}
