// Package health reduces a violation list to a 0-100 schedule health score.
package health

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/schedlint/internal/rules"
)

// Status tiers for a schedule.
const (
	StatusHealthy  = "healthy"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// Penalty points per violation severity.
const (
	penaltyError   = 20
	penaltyWarning = 10
	penaltyInfo    = 5
)

// Health is the derived state of a schedule. It is computed per call and
// never persisted by this package.
type Health struct {
	Status  string `json:"status"`
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// Score reduces a violation list to a health score and status tier.
//
// Scoring: start at 100, subtract 20 per error, 10 per warning, 5 per info,
// floor at 0. Status is critical when any error is present, warning when any
// violation is present, healthy otherwise.
func Score(violations []rules.Violation) Health {
	var errors, warnings, infos int
	for _, v := range violations {
		switch v.Severity {
		case rules.SeverityError:
			errors++
		case rules.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}

	score := 100 - errors*penaltyError - warnings*penaltyWarning - infos*penaltyInfo
	if score < 0 {
		score = 0
	}

	status := StatusHealthy
	switch {
	case errors > 0:
		status = StatusCritical
	case warnings > 0 || infos > 0:
		status = StatusWarning
	}

	return Health{
		Status:  status,
		Score:   score,
		Summary: summarize(errors, warnings, infos),
	}
}

// summarize renders per-severity counts as a short human-readable string.
func summarize(errors, warnings, infos int) string {
	if errors == 0 && warnings == 0 && infos == 0 {
		return "No issues found."
	}

	var parts []string
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", errors, plural(errors, "error", "errors")))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings")))
	}
	if infos > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", infos, plural(infos, "suggestion", "suggestions")))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
