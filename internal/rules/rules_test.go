package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func event(title string, start, end time.Time) schedule.Event {
	return schedule.Event{ID: title, Title: title, Start: start, End: end}
}

func ruleByID(t *testing.T, id string) Rule {
	t.Helper()
	for _, r := range DefaultRules() {
		if r.ID == id {
			r.Params = applyDefaults(r.Params)
			return r
		}
	}
	t.Fatalf("unknown rule %q", id)
	return Rule{}
}

// --- time_conflict ---

func TestTimeConflict_OverlappingPair(t *testing.T) {
	events := []schedule.Event{
		event("standup", at(9, 0), at(10, 0)),
		event("review", at(9, 30), at(10, 30)),
	}
	violations := checkTimeConflicts(ruleByID(t, RuleTimeConflict), events)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	v := violations[0]
	if len(v.EventTitles) != 2 || v.EventTitles[0] != "standup" || v.EventTitles[1] != "review" {
		t.Errorf("expected both titles, got %v", v.EventTitles)
	}
	if v.Severity != SeverityError {
		t.Errorf("expected severity %q, got %q", SeverityError, v.Severity)
	}
}

func TestTimeConflict_OneViolationPerPair(t *testing.T) {
	// Three events all overlapping 9:00-9:30 produce exactly three pairs.
	events := []schedule.Event{
		event("a", at(9, 0), at(10, 0)),
		event("b", at(9, 0), at(9, 45)),
		event("c", at(9, 15), at(9, 30)),
	}
	violations := checkTimeConflicts(ruleByID(t, RuleTimeConflict), events)
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(violations))
	}
}

func TestTimeConflict_BackToBackDoesNotConflict(t *testing.T) {
	// Intervals are half-open: ending at 10:00 and starting at 10:00 touch
	// but do not overlap.
	events := []schedule.Event{
		event("first", at(9, 0), at(10, 0)),
		event("second", at(10, 0), at(11, 0)),
	}
	violations := checkTimeConflicts(ruleByID(t, RuleTimeConflict), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d", len(violations))
	}
}

func TestTimeConflict_AllDayExcluded(t *testing.T) {
	allDay := schedule.Event{ID: "d", Title: "conference day", Start: at(0, 0), End: at(23, 59), AllDay: true}
	events := []schedule.Event{
		allDay,
		event("standup", at(9, 0), at(9, 30)),
	}
	violations := checkTimeConflicts(ruleByID(t, RuleTimeConflict), events)
	if len(violations) != 0 {
		t.Fatalf("expected all-day events to be excluded, got %d violations", len(violations))
	}
}

// --- meeting_buffer ---

func TestMeetingBuffer_TightGap(t *testing.T) {
	events := []schedule.Event{
		event("first", at(9, 0), at(10, 0)),
		event("second", at(10, 5), at(11, 0)),
	}
	violations := checkMeetingBuffers(ruleByID(t, RuleMeetingBuffer), events)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if !strings.Contains(violations[0].Message, "5 minutes") {
		t.Errorf("expected message to name the gap, got %q", violations[0].Message)
	}
}

func TestMeetingBuffer_ZeroGapIsNotABufferViolation(t *testing.T) {
	// Pins the boundary: a zero gap belongs to neither rule. Overlap is the
	// conflict rule's business, and the buffer rule requires a positive gap.
	events := []schedule.Event{
		event("first", at(9, 0), at(10, 0)),
		event("second", at(10, 0), at(11, 0)),
	}
	violations := checkMeetingBuffers(ruleByID(t, RuleMeetingBuffer), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations for zero gap, got %d", len(violations))
	}
}

func TestMeetingBuffer_SufficientGap(t *testing.T) {
	events := []schedule.Event{
		event("first", at(9, 0), at(10, 0)),
		event("second", at(10, 30), at(11, 0)),
	}
	violations := checkMeetingBuffers(ruleByID(t, RuleMeetingBuffer), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d", len(violations))
	}
}

func TestMeetingBuffer_DifferentDaysIgnored(t *testing.T) {
	events := []schedule.Event{
		event("late", at(23, 30), at(23, 55)),
		event("early", at(24, 0), at(24+1, 0)), // next day 00:00
	}
	violations := checkMeetingBuffers(ruleByID(t, RuleMeetingBuffer), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations across days, got %d", len(violations))
	}
}

// --- workload_limit ---

func TestWorkloadLimit_NineEventsNamesAll(t *testing.T) {
	var events []schedule.Event
	for i := 0; i < 9; i++ {
		start := at(8+i, 0)
		events = append(events, event("e"+string(rune('a'+i)), start, start.Add(30*time.Minute)))
	}
	violations := checkWorkloadLimits(ruleByID(t, RuleWorkloadLimit), events)
	if len(violations) != 1 {
		t.Fatalf("expected exactly 1 violation, got %d", len(violations))
	}
	if len(violations[0].EventTitles) != 9 {
		t.Errorf("expected all 9 events named, got %d", len(violations[0].EventTitles))
	}
}

func TestWorkloadLimit_AtLimitPasses(t *testing.T) {
	var events []schedule.Event
	for i := 0; i < 8; i++ {
		start := at(8+i, 0)
		events = append(events, event("e"+string(rune('a'+i)), start, start.Add(30*time.Minute)))
	}
	violations := checkWorkloadLimits(ruleByID(t, RuleWorkloadLimit), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations at the limit, got %d", len(violations))
	}
}

func TestWorkloadLimit_AllDayEventsCount(t *testing.T) {
	events := []schedule.Event{
		{ID: "x", Title: "offsite", Start: at(0, 0), AllDay: true},
	}
	for i := 0; i < 8; i++ {
		start := at(8+i, 0)
		events = append(events, event("e"+string(rune('a'+i)), start, start.Add(30*time.Minute)))
	}
	violations := checkWorkloadLimits(ruleByID(t, RuleWorkloadLimit), events)
	if len(violations) != 1 {
		t.Fatalf("expected the all-day event to push the day over, got %d violations", len(violations))
	}
}

// --- duration_validation ---

func TestDurationValidation_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{"too short", 3, 1},
		{"at minimum", 5, 0},
		{"normal", 60, 0},
		{"at maximum", 480, 0},
		{"too long", 481, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []schedule.Event{
				{ID: "e", Title: "e", Start: at(9, 0), DurationMinutes: tt.minutes},
			}
			violations := checkDurations(ruleByID(t, RuleDurationValidation), events)
			if len(violations) != tt.want {
				t.Fatalf("duration %dm: expected %d violations, got %d", tt.minutes, tt.want, len(violations))
			}
		})
	}
}

func TestDurationValidation_UnresolvableDurationSkipped(t *testing.T) {
	events := []schedule.Event{
		{ID: "e", Title: "ping", Start: at(9, 0)},
	}
	violations := checkDurations(ruleByID(t, RuleDurationValidation), events)
	if len(violations) != 0 {
		t.Fatalf("expected point-in-time events to be skipped, got %d violations", len(violations))
	}
}

// --- location_grouping ---

func TestLocationGrouping_WideGapFlagged(t *testing.T) {
	events := []schedule.Event{
		{ID: "a", Title: "checkup", Start: at(9, 0), End: at(9, 30), Location: "clinic"},
		{ID: "b", Title: "followup", Start: at(16, 0), End: at(16, 30), Location: "clinic"},
	}
	violations := checkLocationGrouping(ruleByID(t, RuleLocationGrouping), events)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Suggestion == "" {
		t.Error("expected a consolidation suggestion")
	}
	if violations[0].Severity != SeverityInfo {
		t.Errorf("expected advisory severity, got %q", violations[0].Severity)
	}
}

func TestLocationGrouping_CloseVisitsPass(t *testing.T) {
	events := []schedule.Event{
		{ID: "a", Title: "checkup", Start: at(9, 0), End: at(9, 30), Location: "clinic"},
		{ID: "b", Title: "followup", Start: at(10, 0), End: at(10, 30), Location: "clinic"},
	}
	violations := checkLocationGrouping(ruleByID(t, RuleLocationGrouping), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %d", len(violations))
	}
}

func TestLocationGrouping_EmptyLocationIgnored(t *testing.T) {
	events := []schedule.Event{
		event("a", at(9, 0), at(9, 30)),
		event("b", at(16, 0), at(16, 30)),
	}
	violations := checkLocationGrouping(ruleByID(t, RuleLocationGrouping), events)
	if len(violations) != 0 {
		t.Fatalf("expected events without a location to be ignored, got %d", len(violations))
	}
}

// --- break_requirement ---

func TestBreakRequirement_LongRunFlaggedOnce(t *testing.T) {
	// Five back-to-back hour-long events: the run passes 240 active minutes
	// at the fifth event and is flagged exactly once.
	var events []schedule.Event
	for i := 0; i < 5; i++ {
		start := at(9+i, 0)
		events = append(events, event("block"+string(rune('a'+i)), start, start.Add(time.Hour)))
	}
	violations := checkBreakRequirement(ruleByID(t, RuleBreakRequirement), events)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if len(violations[0].EventTitles) != 5 {
		t.Errorf("expected the whole run named, got %v", violations[0].EventTitles)
	}
}

func TestBreakRequirement_BreakResetsRun(t *testing.T) {
	// Four hours, a 30-minute break, then two more hours: never over the
	// threshold within a single run.
	var events []schedule.Event
	for i := 0; i < 4; i++ {
		start := at(9+i, 0)
		events = append(events, event("am"+string(rune('a'+i)), start, start.Add(time.Hour)))
	}
	events = append(events,
		event("pm1", at(13, 30), at(14, 30)),
		event("pm2", at(14, 30), at(15, 30)),
	)
	violations := checkBreakRequirement(ruleByID(t, RuleBreakRequirement), events)
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations after a break, got %d", len(violations))
	}
}

func TestBreakRequirement_ShortGapChainsRun(t *testing.T) {
	// 10-minute gaps are below the 30-minute break and keep the run alive.
	var events []schedule.Event
	start := at(9, 0)
	for i := 0; i < 5; i++ {
		events = append(events, event("b"+string(rune('a'+i)), start, start.Add(time.Hour)))
		start = start.Add(time.Hour + 10*time.Minute)
	}
	violations := checkBreakRequirement(ruleByID(t, RuleBreakRequirement), events)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
}
