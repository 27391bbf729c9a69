// Package schedule defines the calendar event model shared by the rule
// engine, planner, and importers.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// EventType categorizes an event for display purposes. Validation rules do
// not branch on it.
type EventType string

// Known event types.
const (
	TypeMeeting     EventType = "meeting"
	TypeTask        EventType = "task"
	TypeReminder    EventType = "reminder"
	TypeAppointment EventType = "appointment"
	TypeDeadline    EventType = "deadline"
	TypePersonal    EventType = "personal"
	TypeWork        EventType = "work"
)

// Event is an immutable snapshot of a scheduled item. The engine never
// mutates caller-owned events.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	AllDay          bool      `json:"all_day"`
	Location        string    `json:"location,omitempty"`
	Type            EventType `json:"type,omitempty"`
}

// EndTime resolves the event's end. When End is unset it is derived from
// DurationMinutes; an event with neither has a zero end and no resolvable
// duration.
func (e Event) EndTime() time.Time {
	if !e.End.IsZero() {
		return e.End
	}
	if e.DurationMinutes > 0 {
		return e.Start.Add(time.Duration(e.DurationMinutes) * time.Minute)
	}
	return time.Time{}
}

// Duration returns the event's duration and whether it could be resolved.
func (e Event) Duration() (time.Duration, bool) {
	end := e.EndTime()
	if end.IsZero() {
		return 0, false
	}
	return end.Sub(e.Start), true
}

// Overlaps reports whether the half-open intervals [start, end) of the two
// events intersect. Events without a resolvable end never overlap anything.
func (e Event) Overlaps(other Event) bool {
	ae, be := e.EndTime(), other.EndTime()
	if ae.IsZero() || be.IsZero() {
		return false
	}
	return e.Start.Before(be) && other.Start.Before(ae)
}

// DayKey returns the local calendar date of the event's start, used for
// per-day bucketing.
func (e Event) DayKey() string {
	return e.Start.Format("2006-01-02")
}

// CheckEvents verifies the caller contract on an event snapshot: every event
// with both endpoints known must have end >= start, and titles must be
// non-empty. Malformed snapshots fail fast rather than producing nonsense
// violations downstream.
func CheckEvents(events []Event) error {
	for _, e := range events {
		if e.Title == "" {
			return fmt.Errorf("event %q has an empty title", e.ID)
		}
		if !e.End.IsZero() && e.End.Before(e.Start) {
			return fmt.Errorf("event %q ends before it starts (%s < %s)",
				e.Title, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
		}
		if e.DurationMinutes < 0 {
			return fmt.Errorf("event %q has negative duration %d", e.Title, e.DurationMinutes)
		}
	}
	return nil
}

// SortByStart returns a copy of events ordered by start time, with title as
// a tiebreaker so the order is deterministic for identical starts.
func SortByStart(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}
