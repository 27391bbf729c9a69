package ics

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/schedlint/internal/schedule"
)

// Window bounds recurrence expansion when loading files.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow expands recurrences from the start of the current day to 90
// days out.
func DefaultWindow(now time.Time) Window {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{Start: day, End: day.AddDate(0, 0, 90)}
}

// LoadFile reads one ICS file and returns its events, recurrences expanded
// within the window.
func LoadFile(path string, w Window) ([]schedule.Event, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	parsed, err := parseCalendar(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	events, err := expandEvents(parsed, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", path, err)
	}
	return events, nil
}

// LoadFiles reads several ICS files concurrently and returns the combined
// snapshot sorted by start time. Per-file results keep their input position
// before the final sort, so output order does not depend on goroutine
// scheduling.
func LoadFiles(paths []string, w Window) ([]schedule.Event, error) {
	perFile := make([][]schedule.Event, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			events, err := LoadFile(path, w)
			if err != nil {
				return err
			}
			perFile[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []schedule.Event
	for _, events := range perFile {
		all = append(all, events...)
	}
	return schedule.SortByStart(all), nil
}
