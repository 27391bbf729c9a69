package rules

// Default parameter values per rule. A configured rule whose parameter is
// zero falls back to these.
const (
	DefaultBufferMinutes        = 10
	DefaultMaxEventsPerDay      = 8
	DefaultMinDurationMinutes   = 5
	DefaultMaxDurationMinutes   = 480
	DefaultMaxGapMinutes        = 180
	DefaultWorkMinutesThreshold = 240
	DefaultRequiredBreakMinutes = 30
)

// DefaultRules returns the rule set the engine ships with, all enabled, with
// default severities and parameters. Callers apply configuration overrides
// on top.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:       RuleTimeConflict,
			Name:     "Time Conflict",
			Category: CategoryConflicts,
			Severity: SeverityError,
			Enabled:  true,
		},
		{
			ID:       RuleMeetingBuffer,
			Name:     "Meeting Buffer",
			Category: CategoryTime,
			Severity: SeverityWarning,
			Enabled:  true,
			Params:   Params{BufferMinutes: DefaultBufferMinutes},
		},
		{
			ID:       RuleWorkloadLimit,
			Name:     "Workload Limit",
			Category: CategoryWorkload,
			Severity: SeverityWarning,
			Enabled:  true,
			Params:   Params{MaxEventsPerDay: DefaultMaxEventsPerDay},
		},
		{
			ID:       RuleDurationValidation,
			Name:     "Duration Validation",
			Category: CategoryDuration,
			Severity: SeverityWarning,
			Enabled:  true,
			Params: Params{
				MinDurationMinutes: DefaultMinDurationMinutes,
				MaxDurationMinutes: DefaultMaxDurationMinutes,
			},
		},
		{
			ID:       RuleLocationGrouping,
			Name:     "Location Grouping",
			Category: CategoryLocation,
			Severity: SeverityInfo,
			Enabled:  true,
			Params:   Params{MaxGapMinutes: DefaultMaxGapMinutes},
		},
		{
			ID:       RuleBreakRequirement,
			Name:     "Break Requirement",
			Category: CategoryBreaks,
			Severity: SeverityWarning,
			Enabled:  true,
			Params: Params{
				WorkMinutesThreshold: DefaultWorkMinutesThreshold,
				RequiredBreakMinutes: DefaultRequiredBreakMinutes,
			},
		},
	}
}

// applyDefaults fills zero-valued parameters with the rule's documented
// defaults so checkers never see a missing knob.
func applyDefaults(p Params) Params {
	if p.BufferMinutes <= 0 {
		p.BufferMinutes = DefaultBufferMinutes
	}
	if p.MaxEventsPerDay <= 0 {
		p.MaxEventsPerDay = DefaultMaxEventsPerDay
	}
	if p.MinDurationMinutes <= 0 {
		p.MinDurationMinutes = DefaultMinDurationMinutes
	}
	if p.MaxDurationMinutes <= 0 {
		p.MaxDurationMinutes = DefaultMaxDurationMinutes
	}
	if p.MaxGapMinutes <= 0 {
		p.MaxGapMinutes = DefaultMaxGapMinutes
	}
	if p.WorkMinutesThreshold <= 0 {
		p.WorkMinutesThreshold = DefaultWorkMinutesThreshold
	}
	if p.RequiredBreakMinutes <= 0 {
		p.RequiredBreakMinutes = DefaultRequiredBreakMinutes
	}
	return p
}
