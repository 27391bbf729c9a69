package rules

import (
	"fmt"
	"sort"
	"time"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// timed filters out all-day events and events without a resolvable end, and
// returns the remainder sorted by start. Time-of-day rules operate on this
// view; all-day events only ever count toward workload.
func timed(events []schedule.Event) []schedule.Event {
	var out []schedule.Event
	for _, e := range events {
		if e.AllDay || e.EndTime().IsZero() {
			continue
		}
		out = append(out, e)
	}
	return schedule.SortByStart(out)
}

func newViolation(rule Rule, message string, titles []string) Violation {
	return Violation{
		RuleID:      rule.ID,
		RuleName:    rule.Name,
		Severity:    rule.Severity,
		Message:     message,
		EventTitles: titles,
		Timestamp:   time.Now(),
	}
}

// checkTimeConflicts flags every pair of timed events whose [start, end)
// intervals overlap. Events are sorted by start so each event only needs to
// look ahead while later starts fall inside its own interval.
func checkTimeConflicts(rule Rule, events []schedule.Event) []Violation {
	sorted := timed(events)

	var violations []Violation
	for i := 0; i < len(sorted); i++ {
		end := sorted[i].EndTime()
		for j := i + 1; j < len(sorted) && sorted[j].Start.Before(end); j++ {
			if !sorted[i].Overlaps(sorted[j]) {
				continue
			}
			violations = append(violations, newViolation(rule,
				fmt.Sprintf("%q overlaps with %q (%s–%s vs %s–%s)",
					sorted[i].Title, sorted[j].Title,
					clock(sorted[i].Start), clock(end),
					clock(sorted[j].Start), clock(sorted[j].EndTime())),
				[]string{sorted[i].Title, sorted[j].Title}))
		}
	}
	return violations
}

// checkMeetingBuffers flags consecutive same-day pairs whose idle gap is
// positive but shorter than the configured buffer. A gap of zero or less is
// a conflict, not a buffer problem; the two rules never fire on the same pair.
func checkMeetingBuffers(rule Rule, events []schedule.Event) []Violation {
	sorted := timed(events)
	buffer := time.Duration(rule.Params.BufferMinutes) * time.Minute

	var violations []Violation
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.DayKey() != next.DayKey() {
			continue
		}
		gap := next.Start.Sub(cur.EndTime())
		if gap > 0 && gap < buffer {
			violations = append(violations, newViolation(rule,
				fmt.Sprintf("only %d minutes between %q and %q (need %d)",
					int(gap.Minutes()), cur.Title, next.Title, rule.Params.BufferMinutes),
				[]string{cur.Title, next.Title}))
		}
	}
	return violations
}

// checkWorkloadLimits buckets events by local calendar day and flags days
// holding more events than allowed. All-day events count toward the bucket.
func checkWorkloadLimits(rule Rule, events []schedule.Event) []Violation {
	byDay := make(map[string][]schedule.Event)
	for _, e := range events {
		byDay[e.DayKey()] = append(byDay[e.DayKey()], e)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var violations []Violation
	for _, day := range days {
		bucket := byDay[day]
		if len(bucket) <= rule.Params.MaxEventsPerDay {
			continue
		}
		titles := make([]string, 0, len(bucket))
		for _, e := range schedule.SortByStart(bucket) {
			titles = append(titles, e.Title)
		}
		violations = append(violations, newViolation(rule,
			fmt.Sprintf("%d events on %s exceeds the limit of %d",
				len(bucket), day, rule.Params.MaxEventsPerDay),
			titles))
	}
	return violations
}

// checkDurations flags timed events whose duration falls outside the
// configured [min, max] range. Both boundaries are inclusive.
func checkDurations(rule Rule, events []schedule.Event) []Violation {
	var violations []Violation
	for _, e := range timed(events) {
		d, ok := e.Duration()
		if !ok {
			continue
		}
		minutes := int(d.Minutes())
		switch {
		case minutes < rule.Params.MinDurationMinutes:
			violations = append(violations, newViolation(rule,
				fmt.Sprintf("%q lasts only %d minutes (minimum %d)",
					e.Title, minutes, rule.Params.MinDurationMinutes),
				[]string{e.Title}))
		case minutes > rule.Params.MaxDurationMinutes:
			violations = append(violations, newViolation(rule,
				fmt.Sprintf("%q lasts %d minutes (maximum %d)",
					e.Title, minutes, rule.Params.MaxDurationMinutes),
				[]string{e.Title}))
		}
	}
	return violations
}

// checkLocationGrouping groups events sharing an identical non-empty
// location and suggests consolidation when consecutive visits to the same
// place are separated by more than the configured gap. Purely advisory.
func checkLocationGrouping(rule Rule, events []schedule.Event) []Violation {
	byLocation := make(map[string][]schedule.Event)
	for _, e := range events {
		if e.AllDay || e.Location == "" || e.EndTime().IsZero() {
			continue
		}
		byLocation[e.Location] = append(byLocation[e.Location], e)
	}

	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	maxGap := time.Duration(rule.Params.MaxGapMinutes) * time.Minute

	var violations []Violation
	for _, loc := range locations {
		group := schedule.SortByStart(byLocation[loc])
		for i := 0; i+1 < len(group); i++ {
			gap := group[i+1].Start.Sub(group[i].EndTime())
			if gap <= maxGap {
				continue
			}
			v := newViolation(rule,
				fmt.Sprintf("%q and %q are both at %s but %d minutes apart",
					group[i].Title, group[i+1].Title, loc, int(gap.Minutes())),
				[]string{group[i].Title, group[i+1].Title})
			v.Suggestion = fmt.Sprintf("Consider scheduling events at %s closer together to avoid repeat trips.", loc)
			violations = append(violations, v)
		}
	}
	return violations
}

// checkBreakRequirement walks the sorted timeline accumulating consecutive
// work minutes. Gaps shorter than the required break chain events into one
// run; once a run's active time passes the threshold without a sufficient
// break, the run is flagged once.
func checkBreakRequirement(rule Rule, events []schedule.Event) []Violation {
	sorted := timed(events)
	if len(sorted) == 0 {
		return nil
	}

	requiredBreak := time.Duration(rule.Params.RequiredBreakMinutes) * time.Minute
	threshold := time.Duration(rule.Params.WorkMinutesThreshold) * time.Minute

	var violations []Violation
	var run []schedule.Event
	var active time.Duration
	flagged := false

	flush := func() {
		run = run[:0]
		active = 0
		flagged = false
	}

	for i, e := range sorted {
		if i > 0 {
			gap := e.Start.Sub(sorted[i-1].EndTime())
			if gap >= requiredBreak {
				flush()
			}
		}
		run = append(run, e)
		d, _ := e.Duration()
		active += d

		if active > threshold && !flagged {
			titles := make([]string, 0, len(run))
			for _, r := range run {
				titles = append(titles, r.Title)
			}
			violations = append(violations, newViolation(rule,
				fmt.Sprintf("%d minutes of back-to-back work without a %d-minute break",
					int(active.Minutes()), rule.Params.RequiredBreakMinutes),
				titles))
			flagged = true
		}
	}
	return violations
}

// clock formats a timestamp as HH:MM for violation messages.
func clock(t time.Time) string {
	return t.Format("15:04")
}
