package rules

import (
	"fmt"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// evaluationOrder fixes the order rules run in, and therefore the order
// their violations appear in the result.
var evaluationOrder = []string{
	RuleTimeConflict,
	RuleMeetingBuffer,
	RuleWorkloadLimit,
	RuleDurationValidation,
	RuleLocationGrouping,
	RuleBreakRequirement,
}

// Engine evaluates a configured rule set against event snapshots. It is
// stateless between calls and safe for concurrent use as long as each call
// receives its own snapshot.
type Engine struct {
	checkers map[string]checker
}

// NewEngine creates an engine with all built-in checkers registered.
func NewEngine() *Engine {
	return &Engine{
		checkers: map[string]checker{
			RuleTimeConflict:       checkTimeConflicts,
			RuleMeetingBuffer:      checkMeetingBuffers,
			RuleWorkloadLimit:      checkWorkloadLimits,
			RuleDurationValidation: checkDurations,
			RuleLocationGrouping:   checkLocationGrouping,
			RuleBreakRequirement:   checkBreakRequirement,
		},
	}
}

// Validate evaluates the enabled rules against the event snapshot. It is a
// pure function of its inputs: the same events and rules always produce the
// same violations in the same order. Disabled rules are skipped entirely.
// Malformed snapshots (end before start, empty titles) are a caller contract
// violation and return an error.
func (e *Engine) Validate(events []schedule.Event, ruleset []Rule) (ValidationResult, error) {
	if err := schedule.CheckEvents(events); err != nil {
		return ValidationResult{}, fmt.Errorf("invalid event snapshot: %w", err)
	}

	byID := make(map[string]Rule, len(ruleset))
	for _, r := range ruleset {
		byID[r.ID] = r
	}

	var violations []Violation
	for _, id := range evaluationOrder {
		rule, ok := byID[id]
		if !ok || !rule.Enabled {
			continue
		}
		check, ok := e.checkers[id]
		if !ok {
			continue
		}
		rule.Params = applyDefaults(rule.Params)
		violations = append(violations, check(rule, events)...)
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}
