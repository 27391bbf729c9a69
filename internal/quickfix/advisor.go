// Package quickfix maps violations to short canned remediation suggestions.
package quickfix

import "github.com/blackwell-systems/schedlint/internal/rules"

// fixes is the static lookup table from rule ID to remediation strings.
var fixes = map[string][]string{
	rules.RuleTimeConflict: {
		"Move one of the overlapping events to a free slot.",
		"Shorten one event so the two no longer overlap.",
		"Make one of the events virtual so you can attend both.",
	},
	rules.RuleMeetingBuffer: {
		"Push the later event back to restore the buffer.",
		"End the earlier event a few minutes sooner.",
	},
	rules.RuleWorkloadLimit: {
		"Move low-priority events on this day to another day.",
		"Decline or delegate events that do not need you.",
		"Batch short items into a single block.",
	},
	rules.RuleDurationValidation: {
		"Adjust the event to a realistic duration.",
		"Split an overly long event into shorter sessions.",
	},
	rules.RuleLocationGrouping: {
		"Schedule events at the same location back to back.",
		"Convert one of the visits to a remote meeting.",
	},
	rules.RuleBreakRequirement: {
		"Insert a break after the long run of events.",
		"Spread the run across parts of the day.",
	},
}

// SuggestionsFor returns canned remediation strings for the violation's
// rule. Unknown rules fall back to the violation's own suggestion message
// when present, otherwise nil. Stateless; never modifies the violation.
func SuggestionsFor(v rules.Violation) []string {
	if s, ok := fixes[v.RuleID]; ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	if v.Suggestion != "" {
		return []string{v.Suggestion}
	}
	return nil
}
