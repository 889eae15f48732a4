// package session persists the login session (access token) across runs.
//
// The backend owns all program and user data; the only local state is the
// token slot, kept in the SQLite database the setup command creates.
package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/trainpartner/tpx/internal/shared"
)

// Session is one stored login.
type Session struct {
	ID          string
	Username    string
	AccessToken string
	CreatedAt   time.Time
}

// Store reads and writes the session slot.
type Store struct {
	db *sql.DB
}

// NewStore creates a [Store] backed by the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save replaces any existing session with the given one. Login calls this
// after a successful token exchange.
func (s *Store) Save(username, accessToken string) (*Session, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return nil, fmt.Errorf("failed to clear previous session: %w", err)
	}

	sess := &Session{
		ID:          shared.GenerateID(),
		Username:    username,
		AccessToken: accessToken,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO sessions (id, username, access_token, created_at) VALUES (?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, sess.ID, sess.Username, sess.AccessToken, sess.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session: %w", err)
	}

	return sess, nil
}

// Current returns the stored session, or [shared.ErrNotAuthenticated] when
// the slot is empty.
func (s *Store) Current() (*Session, error) {
	query := `
		SELECT id, username, access_token, created_at
		FROM sessions
		ORDER BY created_at DESC
		LIMIT 1
	`

	var sess Session
	err := s.db.QueryRow(query).Scan(&sess.ID, &sess.Username, &sess.AccessToken, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &sess, nil
}

// Clear removes the stored session. Logout calls this; clearing an already
// empty slot is not an error.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
