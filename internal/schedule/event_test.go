package schedule

import (
	"testing"
	"time"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestEndTime_DerivedFromDuration(t *testing.T) {
	e := Event{Title: "e", Start: at(9, 0), DurationMinutes: 45}
	if got := e.EndTime(); !got.Equal(at(9, 45)) {
		t.Errorf("expected 09:45, got %v", got)
	}
}

func TestEndTime_ExplicitEndWins(t *testing.T) {
	e := Event{Title: "e", Start: at(9, 0), End: at(10, 0), DurationMinutes: 45}
	if got := e.EndTime(); !got.Equal(at(10, 0)) {
		t.Errorf("expected explicit end to win, got %v", got)
	}
}

func TestDuration_Unresolvable(t *testing.T) {
	e := Event{Title: "ping", Start: at(9, 0)}
	if _, ok := e.Duration(); ok {
		t.Error("expected unresolvable duration")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want bool
	}{
		{
			"partial overlap",
			Event{Title: "a", Start: at(9, 0), End: at(10, 0)},
			Event{Title: "b", Start: at(9, 30), End: at(10, 30)},
			true,
		},
		{
			"containment",
			Event{Title: "a", Start: at(9, 0), End: at(12, 0)},
			Event{Title: "b", Start: at(10, 0), End: at(11, 0)},
			true,
		},
		{
			"touching intervals",
			Event{Title: "a", Start: at(9, 0), End: at(10, 0)},
			Event{Title: "b", Start: at(10, 0), End: at(11, 0)},
			false,
		},
		{
			"disjoint",
			Event{Title: "a", Start: at(9, 0), End: at(10, 0)},
			Event{Title: "b", Start: at(11, 0), End: at(12, 0)},
			false,
		},
		{
			"point-in-time never overlaps",
			Event{Title: "a", Start: at(9, 0)},
			Event{Title: "b", Start: at(9, 0), End: at(10, 0)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckEvents(t *testing.T) {
	valid := []Event{{ID: "1", Title: "ok", Start: at(9, 0), End: at(10, 0)}}
	if err := CheckEvents(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	backwards := []Event{{ID: "1", Title: "bad", Start: at(10, 0), End: at(9, 0)}}
	if err := CheckEvents(backwards); err == nil {
		t.Error("expected error for end before start")
	}

	untitled := []Event{{ID: "1", Start: at(9, 0), End: at(10, 0)}}
	if err := CheckEvents(untitled); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestSortByStart_StableAndNonMutating(t *testing.T) {
	events := []Event{
		{ID: "c", Title: "c", Start: at(11, 0)},
		{ID: "a", Title: "a", Start: at(9, 0)},
		{ID: "b", Title: "b", Start: at(9, 0)},
	}
	sorted := SortByStart(events)

	if sorted[0].ID != "a" || sorted[1].ID != "b" || sorted[2].ID != "c" {
		t.Errorf("unexpected order: %v %v %v", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	if events[0].ID != "c" {
		t.Error("input slice was reordered")
	}
}

func TestFingerprint(t *testing.T) {
	events := []Event{
		{ID: "1", Title: "a", Start: at(9, 0), End: at(10, 0)},
		{ID: "2", Title: "b", Start: at(11, 0), End: at(12, 0)},
	}
	base := Fingerprint(events, "default")

	if Fingerprint(events, "default") != base {
		t.Error("fingerprint is not stable")
	}

	// Order-insensitive over the same snapshot.
	reversed := []Event{events[1], events[0]}
	if Fingerprint(reversed, "default") != base {
		t.Error("fingerprint depends on input order")
	}

	if Fingerprint(events, "other-ruleset") == base {
		t.Error("fingerprint ignores the ruleset descriptor")
	}

	moved := []Event{events[0], {ID: "2", Title: "b", Start: at(13, 0), End: at(14, 0)}}
	if Fingerprint(moved, "default") == base {
		t.Error("fingerprint ignores event changes")
	}
}
