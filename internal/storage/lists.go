package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// WordList is a named, user-saved list of words.
type WordList struct {
	Name       string
	Words      []string
	SecretWord string
	UpdatedAt  time.Time
}

// ListInfo summarizes a saved list.
type ListInfo struct {
	Name      string
	Count     int
	UpdatedAt time.Time
}

// SaveList creates or replaces the list called name.
func (s *Store) SaveList(name string, words []string, secretWord string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("storage: list name is empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO word_lists (name, secret_word) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET secret_word = excluded.secret_word, updated_at = CURRENT_TIMESTAMP`,
		name, secretWord,
	); err != nil {
		return fmt.Errorf("storage: cannot save list %q: %w", name, err)
	}

	var id int64
	if err := tx.QueryRow("SELECT id FROM word_lists WHERE name = ?", name).Scan(&id); err != nil {
		return fmt.Errorf("storage: cannot find list %q: %w", name, err)
	}

	if _, err := tx.Exec("DELETE FROM list_words WHERE list_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot replace words of %q: %w", name, err)
	}

	pos := 0
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO list_words (list_id, position, word) VALUES (?, ?, ?)",
			id, pos, w,
		); err != nil {
			return fmt.Errorf("storage: cannot save word %q: %w", w, err)
		}
		pos++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit list %q: %w", name, err)
	}
	return nil
}

// List returns the list called name, or ErrListNotFound.
func (s *Store) List(name string) (WordList, error) {
	var (
		l         WordList
		id        int64
		updatedAt any
	)
	err := s.db.QueryRow(
		"SELECT id, name, secret_word, updated_at FROM word_lists WHERE name = ?",
		name,
	).Scan(&id, &l.Name, &l.SecretWord, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return l, fmt.Errorf("%w: %q", ErrListNotFound, name)
	}
	if err != nil {
		return l, fmt.Errorf("storage: cannot query list %q: %w", name, err)
	}
	l.UpdatedAt = parseTime(updatedAt)

	rows, err := s.db.Query(
		"SELECT word FROM list_words WHERE list_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return l, fmt.Errorf("storage: cannot query words of %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return l, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		l.Words = append(l.Words, w)
	}
	if err := rows.Err(); err != nil {
		return l, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return l, nil
}

// Lists returns a summary of every saved list, sorted by name.
func (s *Store) Lists() ([]ListInfo, error) {
	rows, err := s.db.Query(
		`SELECT l.name, COUNT(w.word), l.updated_at
		 FROM word_lists l
		 LEFT JOIN list_words w ON w.list_id = l.id
		 GROUP BY l.id
		 ORDER BY l.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lists: %w", err)
	}
	defer rows.Close()

	var out []ListInfo
	for rows.Next() {
		var (
			info      ListInfo
			updatedAt any
		)
		if err := rows.Scan(&info.Name, &info.Count, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteList removes the list called name, or returns ErrListNotFound.
func (s *Store) DeleteList(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Words are removed explicitly; foreign_keys is per connection.
	if _, err := tx.Exec(
		"DELETE FROM list_words WHERE list_id IN (SELECT id FROM word_lists WHERE name = ?)",
		name,
	); err != nil {
		return fmt.Errorf("storage: cannot delete words of %q: %w", name, err)
	}

	res, err := tx.Exec("DELETE FROM word_lists WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete list %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrListNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete of %q: %w", name, err)
	}
	return nil
}
