package storage

import (
	"fmt"
	"strings"
	"time"
)

const listSourcePrefix = "list:"

// ListSource returns the results source for the saved list called name.
// Packs record under their bare ID, so a list named like a pack keeps its
// own best times.
func ListSource(name string) string {
	return listSourcePrefix + name
}

// ListName returns the list name behind a source made by ListSource.
func ListName(source string) (string, bool) {
	return strings.CutPrefix(source, listSourcePrefix)
}

// Result records one finished puzzle.
type Result struct {
	ID        int64
	Source    string // pack ID or ListSource of a saved list
	Words     int
	Found     int // words found by the player, not revealed
	Revealed  bool
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordResult saves a finished puzzle and returns its ID.
func (s *Store) RecordResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (source, words, found, revealed, duration_ms) VALUES (?, ?, ?, ?, ?)",
		r.Source, r.Words, r.Found, r.Revealed, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes returns the fastest unrevealed results for source.
func (s *Store) BestTimes(source string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, source, words, found, revealed, duration_ms, created_at
		 FROM results
		 WHERE source = ? AND revealed = 0
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		source, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r         Result
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.Words, &r.Found, &r.Revealed, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearResults deletes all results for source.
func (s *Store) ClearResults(source string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE source = ?", source)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
