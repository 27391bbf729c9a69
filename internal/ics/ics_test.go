package ics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:ev-1
SUMMARY:Standup
LOCATION:Room 1
DTSTART:20260302T090000Z
DTEND:20260302T093000Z
END:VEVENT
BEGIN:VEVENT
UID:ev-2
SUMMARY:Offsite
DTSTART;VALUE=DATE:20260303
DTEND;VALUE=DATE:20260304
END:VEVENT
END:VCALENDAR
`

const recurringICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:ev-daily
SUMMARY:Daily sync
DTSTART:20260302T100000Z
DTEND:20260302T101500Z
RRULE:FREQ=DAILY;COUNT=5
END:VEVENT
END:VCALENDAR
`

func window() Window {
	return Window{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func writeICS(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseCalendar_Basic(t *testing.T) {
	parsed, err := parseCalendar([]byte(simpleICS))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	standup := parsed[0]
	assert.Equal(t, "Standup", standup.Summary)
	assert.Equal(t, "Room 1", standup.Location)
	assert.False(t, standup.AllDay)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), standup.Start.UTC())

	offsite := parsed[1]
	assert.Equal(t, "Offsite", offsite.Summary)
	assert.True(t, offsite.AllDay)
}

func TestParseCalendar_Empty(t *testing.T) {
	_, err := parseCalendar(nil)
	assert.Error(t, err)
}

func TestLoadFile_ExpandsRecurrence(t *testing.T) {
	path := writeICS(t, "daily.ics", recurringICS)

	events, err := LoadFile(path, window())
	require.NoError(t, err)
	require.Len(t, events, 5)

	for i, e := range events {
		assert.Equal(t, "Daily sync", e.Title)
		wantStart := time.Date(2026, 3, 2+i, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, wantStart, e.Start.UTC(), "occurrence %d", i)
		assert.Equal(t, 15*time.Minute, e.End.Sub(e.Start))
		assert.NotEmpty(t, e.ID)
	}
}

func TestLoadFile_WindowFiltersSingleEvents(t *testing.T) {
	path := writeICS(t, "simple.ics", simpleICS)

	w := Window{
		Start: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	events, err := LoadFile(path, w)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLoadFiles_MergesAndSorts(t *testing.T) {
	a := writeICS(t, "a.ics", recurringICS)
	b := writeICS(t, "b.ics", simpleICS)

	events, err := LoadFiles([]string{a, b}, window())
	require.NoError(t, err)
	require.Len(t, events, 7)

	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Start.Before(events[i-1].Start),
			"events must be sorted by start")
	}
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles([]string{"/does/not/exist.ics"}, window())
	assert.Error(t, err)
}

func TestExpandEvents_BadRangeRejected(t *testing.T) {
	w := window()
	_, err := expandEvents(nil, w.End, w.Start)
	assert.Error(t, err)
}
