package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/schedlint/internal/config"
	"github.com/blackwell-systems/schedlint/internal/health"
	"github.com/blackwell-systems/schedlint/internal/ics"
	"github.com/blackwell-systems/schedlint/internal/output"
	"github.com/blackwell-systems/schedlint/internal/planner"
	"github.com/blackwell-systems/schedlint/internal/rules"
	"github.com/blackwell-systems/schedlint/internal/schedule"
)

var (
	planDurations []time.Duration
	planTitles    []string
	planBuffer    int
	planDayStart  string
	planFrom      string
	planValidate  bool
)

var planCmd = &cobra.Command{
	Use:   "plan <file.ics>",
	Short: "Place new events into free slots",
	Long: `Greedily place new events of the given durations into the first
available slots of the schedule, respecting buffers and never moving
existing events. Placements are proposals only; nothing is written back
to the calendar file.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().DurationSliceVar(&planDurations, "duration", nil, "Duration of an event to place (repeatable, e.g. --duration 30m)")
	planCmd.Flags().StringSliceVar(&planTitles, "title", nil, "Title for the corresponding --duration (optional)")
	planCmd.Flags().IntVar(&planBuffer, "buffer", 0, "Buffer minutes around placements (default from config)")
	planCmd.Flags().StringVar(&planDayStart, "day-start", "", "Earliest time of day for placements, HH:MM (default from config)")
	planCmd.Flags().StringVar(&planFrom, "from", "", "Plan as if the current time were this RFC3339 timestamp")
	planCmd.Flags().BoolVar(&planValidate, "validate", true, "Validate the schedule including proposed placements")
	_ = planCmd.MarkFlagRequired("duration")
	rootCmd.AddCommand(planCmd)
}

// planReport is the JSON shape emitted by --json.
type planReport struct {
	Placements []planner.Placement `json:"placements"`
	Health     *health.Health      `json:"health,omitempty"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	now := time.Now()
	if planFrom != "" {
		now, err = time.Parse(time.RFC3339, planFrom)
		if err != nil {
			return fmt.Errorf("parsing --from: %w", err)
		}
	}

	existing, err := ics.LoadFile(args[0], ics.DefaultWindow(now))
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	policy, err := buildPolicy(cfg, now)
	if err != nil {
		return err
	}

	requests := make([]planner.Request, len(planDurations))
	for i, d := range planDurations {
		title := fmt.Sprintf("New event %d", i+1)
		if i < len(planTitles) {
			title = planTitles[i]
		}
		requests[i] = planner.Request{Title: title, Duration: d}
	}

	placements := planner.PlaceAll(existing, requests, policy)

	var combinedHealth *health.Health
	if planValidate {
		combined := make([]schedule.Event, 0, len(existing)+len(placements))
		combined = append(combined, existing...)
		for _, p := range placements {
			combined = append(combined, p.Event)
		}
		result, verr := rules.NewEngine().Validate(combined, cfg.EffectiveRules())
		if verr != nil {
			return verr
		}
		h := health.Score(result.Violations)
		combinedHealth = &h
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(planReport{Placements: placements, Health: combinedHealth})
	}

	renderPlan(placements, combinedHealth)
	return nil
}

// buildPolicy resolves the placement policy from flags, falling back to the
// configured defaults.
func buildPolicy(cfg *config.Config, now time.Time) (planner.Policy, error) {
	dayStart := cfg.Planner.DayStart
	if planDayStart != "" {
		dayStart = planDayStart
	}
	t, err := time.Parse("15:04", dayStart)
	if err != nil {
		return planner.Policy{}, fmt.Errorf("parsing day start %q: %w", dayStart, err)
	}

	buffer := cfg.Planner.BufferMinutes
	if planBuffer > 0 {
		buffer = planBuffer
	}

	return planner.Policy{
		DayStartHour:   t.Hour(),
		DayStartMinute: t.Minute(),
		BufferMinutes:  buffer,
		Now:            now,
	}, nil
}

func renderPlan(placements []planner.Placement, h *health.Health) {
	fmt.Println(output.Section("Proposed Placements"))
	fmt.Println()

	table := output.NewTable("#", "Title", "Start", "End", "Note")
	for i, p := range placements {
		note := ""
		if p.Displaced {
			note = "rescheduled near " + p.DisplacedBy
		}
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			p.Event.Title,
			p.Event.Start.Format("Mon 15:04"),
			p.Event.End.Format("Mon 15:04"),
			note,
		)
	}
	table.Print()

	if h != nil {
		fmt.Println()
		fmt.Printf(" With these placements: %s (%d/100) — %s\n",
			output.StatusLabel(h.Status), h.Score, h.Summary)
	}
}
