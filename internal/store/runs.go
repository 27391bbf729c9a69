package store

import (
	"strings"
	"time"

	"github.com/blackwell-systems/schedlint/internal/health"
	"github.com/blackwell-systems/schedlint/internal/rules"
)

// Run is a recorded validation pass over an event snapshot.
type Run struct {
	ID             int64     `json:"id"`
	RanAt          time.Time `json:"ran_at"`
	Source         string    `json:"source"`
	Score          int       `json:"score"`
	Status         string    `json:"status"`
	EventCount     int       `json:"event_count"`
	ViolationCount int       `json:"violation_count"`
}

// SaveRun records a validation result together with its health summary and
// returns the new run's ID.
func (db *DB) SaveRun(source string, eventCount int, result rules.ValidationResult, h health.Health) (int64, error) {
	res, err := db.conn.Exec(
		`INSERT INTO runs (ran_at, source, score, status, event_count, violation_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), source, h.Score, h.Status,
		eventCount, len(result.Violations),
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, v := range result.Violations {
		if _, err := db.conn.Exec(
			`INSERT INTO violations (run_id, rule_id, severity, message, event_titles)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, v.RuleID, string(v.Severity), v.Message, strings.Join(v.EventTitles, ", "),
		); err != nil {
			return 0, err
		}
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(
		`SELECT id, ran_at, source, score, status, event_count, violation_count
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ranAt string
		if err := rows.Scan(&r.ID, &ranAt, &r.Source, &r.Score, &r.Status, &r.EventCount, &r.ViolationCount); err != nil {
			return nil, err
		}
		r.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
