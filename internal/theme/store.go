package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/countrydir/internal/db"
)

// Store persists one theme preference per visitor.
type Store interface {
	// Get returns the stored mode; ok is false when none is stored.
	Get(ctx context.Context, visitorID string) (mode Mode, ok bool, err error)
	Set(ctx context.Context, visitorID string, mode Mode) error
}

// SQLStore keeps preferences in the theme_preferences table.
type SQLStore struct {
	db *db.DB
}

// NewSQLStore creates a store backed by database.
func NewSQLStore(database *db.DB) *SQLStore {
	return &SQLStore{db: database}
}

// Get returns the stored mode for visitorID. Rows holding an unknown value
// are treated as absent.
func (s *SQLStore) Get(ctx context.Context, visitorID string) (Mode, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme FROM theme_preferences WHERE visitor_id = ?`, visitorID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading theme preference: %w", err)
	}
	mode, ok := ParseMode(raw)
	return mode, ok, nil
}

// Set stores mode for visitorID, replacing any earlier value.
func (s *SQLStore) Set(ctx context.Context, visitorID string, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid theme %q", mode)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO theme_preferences (visitor_id, theme, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`,
		visitorID, string(mode), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}
