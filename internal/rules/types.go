// Package rules provides the schedule validation engine and rule types.
package rules

import (
	"time"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// Severity of a violation.
type Severity string

// Severity levels, ordered from least to most serious.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category groups rules for display and filtering; the engine does not
// evaluate it.
type Category string

// Rule categories.
const (
	CategoryTime      Category = "time"
	CategoryLocation  Category = "location"
	CategoryWorkload  Category = "workload"
	CategoryBreaks    Category = "breaks"
	CategoryConflicts Category = "conflicts"
	CategoryDuration  Category = "duration"
)

// Rule IDs form a closed set; each selects one checker in the dispatch table.
const (
	RuleTimeConflict       = "time_conflict"
	RuleMeetingBuffer      = "meeting_buffer"
	RuleWorkloadLimit      = "workload_limit"
	RuleDurationValidation = "duration_validation"
	RuleLocationGrouping   = "location_grouping"
	RuleBreakRequirement   = "break_requirement"
)

// Params holds the numeric knobs a rule reads. Zero values mean "use the
// rule's documented default"; the engine fills them in before dispatch.
type Params struct {
	BufferMinutes        int `json:"buffer_minutes,omitempty"`
	MaxEventsPerDay      int `json:"max_events_per_day,omitempty"`
	MinDurationMinutes   int `json:"min_duration_minutes,omitempty"`
	MaxDurationMinutes   int `json:"max_duration_minutes,omitempty"`
	MaxGapMinutes        int `json:"max_gap_minutes,omitempty"`
	WorkMinutesThreshold int `json:"work_minutes_threshold,omitempty"`
	RequiredBreakMinutes int `json:"required_break_minutes,omitempty"`
}

// Rule is a named validation policy. Severity and Params are configurable;
// ID selects the behavior.
type Rule struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Enabled  bool     `json:"enabled"`
	Params   Params   `json:"params"`
}

// Violation is one reported problem. Timestamp is the evaluation time, not
// any event time.
type Violation struct {
	RuleID      string    `json:"rule_id"`
	RuleName    string    `json:"rule_name"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	EventTitles []string  `json:"event_titles"`
	Suggestion  string    `json:"suggestion,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ValidationResult is the outcome of evaluating a rule set against an event
// snapshot. Violations are ordered by rule evaluation order, then discovery
// order within a rule.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// checker examines an event snapshot under one configured rule and returns
// zero or more violations.
type checker func(rule Rule, events []schedule.Event) []Violation
