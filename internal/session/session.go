// Package session persists client-side state that must survive restarts:
// the bearer and refresh tokens, the display username, and the selected
// business scope. State lives in a small SQLite database and is cached in
// memory; selection changes are published to subscribers so every consumer
// re-renders against the new scope.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/trackinhq/trackin/internal/common"
	"github.com/trackinhq/trackin/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Setting keys. These mirror the names the web dashboard used for its
// durable client storage, which keeps a shared Gateway account portable.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUsername     = "username"
	keySelection    = "business_selected"
)

// Session is the durable client state store.
type Session struct {
	db          *sql.DB
	values      map[string]string
	subscribers []func(selection string)
	dbPath      string
	mu          sync.RWMutex
}

// Open creates or opens the session database at dbPath and loads all
// stored values into memory.
func Open(dbPath string) (*Session, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("session database path is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrSessionCorrupt, err)
	}

	s := &Session{
		db:     db,
		dbPath: dbPath,
		values: make(map[string]string),
	}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate session database: %w", err)
	}
	if err := s.load(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Session) Close() error {
	return s.db.Close()
}

func (s *Session) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close settings rows", "error", closeErr)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan setting: %w", err)
		}
		s.values[key] = value
	}
	return rows.Err()
}

func (s *Session) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *Session) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Session) unset(keys ...string) error {
	for _, key := range keys {
		if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to clear setting %s: %w", key, err)
		}
	}
	s.mu.Lock()
	for _, key := range keys {
		delete(s.values, key)
	}
	s.mu.Unlock()
	return nil
}

// AccessToken returns the stored bearer token, empty when logged out.
// Satisfies the gateway's CredentialSource.
func (s *Session) AccessToken() string {
	return s.get(keyAccessToken)
}

// RefreshToken returns the stored refresh token.
func (s *Session) RefreshToken() string {
	return s.get(keyRefreshToken)
}

// Username returns the display name stored at login.
func (s *Session) Username() string {
	return s.get(keyUsername)
}

// SetCredentials stores the tokens and username from a successful login.
func (s *Session) SetCredentials(accessToken, refreshToken, username string) error {
	if err := s.set(keyAccessToken, accessToken); err != nil {
		return err
	}
	if err := s.set(keyRefreshToken, refreshToken); err != nil {
		return err
	}
	return s.set(keyUsername, username)
}

// ClearCredentials removes all stored credentials, e.g. on logout or when
// the Gateway rejects the token.
func (s *Session) ClearCredentials() error {
	return s.unset(keyAccessToken, keyRefreshToken, keyUsername)
}

// Selection returns the current business scope: "all" or a business id.
func (s *Session) Selection() string {
	if v := s.get(keySelection); v != "" {
		return v
	}
	return model.SelectionAll
}

// SetSelection persists a new business scope and notifies subscribers.
func (s *Session) SetSelection(id string) error {
	if id == "" {
		id = model.SelectionAll
	}
	if err := s.set(keySelection, id); err != nil {
		return err
	}
	s.notify(id)
	return nil
}

// Subscribe registers a callback invoked on every selection change.
// Callbacks run synchronously on the goroutine changing the selection.
func (s *Session) Subscribe(fn func(selection string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) notify(selection string) {
	s.mu.RLock()
	subs := make([]func(string), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(selection)
	}
}

// ReconcileSelection validates the current selection against a freshly
// fetched business list: a specific selection that no longer exists
// resets to "all". Returns the effective selection.
func (s *Session) ReconcileSelection(businesses []model.Business) (string, error) {
	selected := s.Selection()
	if selected == model.SelectionAll {
		return selected, nil
	}
	for _, b := range businesses {
		if b.Selection() == selected {
			return selected, nil
		}
	}

	slog.Info("selected business no longer exists, reverting to all",
		"selection", selected)
	if err := s.SetSelection(model.SelectionAll); err != nil {
		return selected, err
	}
	return model.SelectionAll, nil
}
