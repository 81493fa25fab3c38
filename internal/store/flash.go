package store

import (
	"database/sql"
	"fmt"
	"strings"

	"carebase/internal/model"
)

// FlashStore persists one-shot status messages keyed by a session token.
// Messages survive the redirect that follows every mutation and are
// deleted when popped for display.
type FlashStore struct {
	db *sql.DB
}

func NewFlashStore(db *sql.DB) *FlashStore {
	return &FlashStore{db: db}
}

func (s *FlashStore) Add(sessionToken, category, message string) error {
	_, err := s.db.Exec(
		`INSERT INTO flashes (session_token, category, message) VALUES (?, ?, ?)`,
		sessionToken, category, message,
	)
	if err != nil {
		return fmt.Errorf("insert flash: %w", err)
	}
	return nil
}

// Pop returns the session's pending messages in insertion order and removes
// them, so each message renders exactly once.
func (s *FlashStore) Pop(sessionToken string) ([]model.Flash, error) {
	rows, err := s.db.Query(
		`SELECT id, session_token, category, message, created_at
		 FROM flashes WHERE session_token = ? ORDER BY id`,
		sessionToken,
	)
	if err != nil {
		return nil, fmt.Errorf("query flashes: %w", err)
	}
	defer rows.Close()

	var flashes []model.Flash
	for rows.Next() {
		var f model.Flash
		if err := rows.Scan(&f.ID, &f.SessionToken, &f.Category, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan flash: %w", err)
		}
		flashes = append(flashes, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Delete only the rows just returned; a message queued for the same
	// session between the SELECT and the DELETE must survive for the
	// next render.
	if len(flashes) > 0 {
		placeholders := make([]string, len(flashes))
		args := make([]any, len(flashes))
		for i, f := range flashes {
			placeholders[i] = "?"
			args[i] = f.ID
		}
		query := `DELETE FROM flashes WHERE id IN (` + strings.Join(placeholders, ",") + `)`
		if _, err := s.db.Exec(query, args...); err != nil {
			return nil, fmt.Errorf("clear flashes: %w", err)
		}
	}
	return flashes, nil
}

// DeleteStale removes messages from abandoned sessions and returns the
// number deleted.
func (s *FlashStore) DeleteStale() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM flashes WHERE created_at <= datetime('now', '-1 day')`)
	if err != nil {
		return 0, fmt.Errorf("delete stale flashes: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
