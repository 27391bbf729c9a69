// Package planner finds placement times for new events using greedy
// first-fit search over an existing schedule.
package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// Default policy values.
const (
	DefaultBufferMinutes = 15
	DefaultDayStartHour  = 9
)

// Request asks for one new event of the given duration. EarliestStart, when
// set, keeps the candidate from being placed before that time.
type Request struct {
	Title         string        `json:"title"`
	Duration      time.Duration `json:"duration"`
	EarliestStart time.Time     `json:"earliest_start,omitempty"`
	Type          schedule.EventType
	Location      string
}

// Policy supplies the knobs for a placement pass.
type Policy struct {
	// DayStart is the earliest time of day placements begin, expressed as
	// hour and minute in local time. Zero means 09:00.
	DayStartHour   int
	DayStartMinute int

	// BufferMinutes is the idle gap kept around every placement.
	// Zero means the default of 15.
	BufferMinutes int

	// Now pins the clock for deterministic planning; zero means time.Now().
	Now time.Time
}

// Placement is one committed slot. Displaced reports whether the slot was
// pushed forward past an existing event, and DisplacedBy names the last
// event skipped; callers can surface a "rescheduled near X" notice from it.
// The planner never moves existing events itself.
type Placement struct {
	Event       schedule.Event `json:"event"`
	Displaced   bool           `json:"displaced"`
	DisplacedBy string         `json:"displaced_by,omitempty"`
}

func (p Policy) buffer() time.Duration {
	if p.BufferMinutes <= 0 {
		return DefaultBufferMinutes * time.Minute
	}
	return time.Duration(p.BufferMinutes) * time.Minute
}

func (p Policy) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

func (p Policy) dayStart(now time.Time) time.Time {
	hour := p.DayStartHour
	if hour == 0 && p.DayStartMinute == 0 {
		hour = DefaultDayStartHour
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, p.DayStartMinute, 0, 0, now.Location())
}

// PlaceAll finds a slot for each request, in request order, without moving
// existing events. The cursor starts at max(day start, now); each request is
// pushed past any conflicting event (plus buffer) until it fits, then the
// cursor advances to the placement's end plus buffer.
//
// This is first-fit, not optimization: requests are never reordered, gaps
// earlier in the day can stay unfilled, and a long request simply runs past
// midnight rather than erroring. Results are deterministic for identical
// inputs. Callers that share one existing set across goroutines must
// serialize their PlaceAll calls themselves; the planner holds no locks
// because it mutates nothing.
func PlaceAll(existing []schedule.Event, requests []Request, policy Policy) []Placement {
	now := policy.now()
	buffer := policy.buffer()

	cursor := policy.dayStart(now)
	if now.After(cursor) {
		cursor = now
	}

	// All-day events have no time-of-day extent and never block a slot.
	var blockers []schedule.Event
	for _, e := range existing {
		if !e.AllDay && !e.EndTime().IsZero() {
			blockers = append(blockers, e)
		}
	}

	placements := make([]Placement, 0, len(requests))
	for _, req := range requests {
		start := cursor
		if !req.EarliestStart.IsZero() && req.EarliestStart.After(start) {
			start = req.EarliestStart
		}

		displaced := false
		displacedBy := ""
		for {
			end := start.Add(req.Duration)
			conflict, ok := firstConflict(blockers, start, end)
			if !ok {
				break
			}
			start = conflict.EndTime().Add(buffer)
			displaced = true
			displacedBy = conflict.Title
		}

		placed := schedule.Event{
			ID:       uuid.NewString(),
			Title:    req.Title,
			Start:    start,
			End:      start.Add(req.Duration),
			Type:     req.Type,
			Location: req.Location,
		}
		placements = append(placements, Placement{
			Event:       placed,
			Displaced:   displaced,
			DisplacedBy: displacedBy,
		})

		blockers = append(blockers, placed)
		cursor = placed.End.Add(buffer)
	}
	return placements
}

// firstConflict returns the first blocker overlapping [start, end). Blockers
// are scanned in order; with the small event counts this planner sees, a
// linear scan per candidate is fine.
func firstConflict(blockers []schedule.Event, start, end time.Time) (schedule.Event, bool) {
	for _, b := range blockers {
		if b.Start.Before(end) && start.Before(b.EndTime()) {
			return b, true
		}
	}
	return schedule.Event{}, false
}
