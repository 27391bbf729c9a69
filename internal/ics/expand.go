package ics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// maxOccurrencesPerEvent caps recurrence expansion so a pathological RRULE
// cannot blow up the snapshot.
const maxOccurrencesPerEvent = 1000

// expandEvents turns parsed VEVENTs into concrete schedule events within
// [rangeStart, rangeEnd]. Non-recurring events pass through when they fall
// inside the window; RRULE events are expanded occurrence by occurrence with
// EXDATEs removed.
func expandEvents(events []parsedEvent, rangeStart, rangeEnd time.Time) ([]schedule.Event, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, fmt.Errorf("expand: range end %s is before range start %s", rangeEnd, rangeStart)
	}

	var out []schedule.Event
	for _, ev := range events {
		if ev.RawRRule == "" {
			if ev.Start.Before(rangeStart) || ev.Start.After(rangeEnd) {
				continue
			}
			out = append(out, toEvent(ev, ev.Start, ev.End))
			continue
		}

		rule, err := rrule.StrToRRule(ev.RawRRule)
		if err != nil {
			// A bad RRULE degrades to the base occurrence rather than
			// dropping the event.
			out = append(out, toEvent(ev, ev.Start, ev.End))
			continue
		}
		rule.DTStart(ev.Start)

		duration := time.Duration(0)
		if !ev.End.IsZero() {
			duration = ev.End.Sub(ev.Start)
		}

		excluded := make(map[int64]bool, len(ev.ExDates))
		for _, x := range ev.ExDates {
			excluded[x.Unix()] = true
		}

		occurrences := rule.Between(rangeStart, rangeEnd, true)
		if len(occurrences) > maxOccurrencesPerEvent {
			occurrences = occurrences[:maxOccurrencesPerEvent]
		}
		for _, start := range occurrences {
			if excluded[start.Unix()] {
				continue
			}
			end := time.Time{}
			if duration > 0 {
				end = start.Add(duration)
			}
			out = append(out, toEvent(ev, start, end))
		}
	}
	return out, nil
}

func toEvent(ev parsedEvent, start, end time.Time) schedule.Event {
	return schedule.Event{
		ID:       uuid.NewString(),
		Title:    ev.Summary,
		Start:    start,
		End:      end,
		AllDay:   ev.AllDay,
		Location: ev.Location,
		Type:     schedule.TypeMeeting,
	}
}
