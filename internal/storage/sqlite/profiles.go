package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/youshallpass/internal/models"
	"github.com/iudanet/youshallpass/internal/storage"
)

// Exists reports whether at least one profile row exists
func (s *Storage) Exists(ctx context.Context) (bool, error) {
	if s.closed.Load() {
		return false, storage.ErrStorageClosed
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM profiles)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check profiles: %w", err)
	}

	return exists, nil
}

// FindByAccount retrieves the profile stored for account
func (s *Storage) FindByAccount(ctx context.Context, account string) (models.UserProfile, bool, error) {
	if s.closed.Load() {
		return models.UserProfile{}, false, storage.ErrStorageClosed
	}

	query := `SELECT account, digest FROM profiles WHERE account = ?`

	var profile models.UserProfile
	err := s.db.QueryRowContext(ctx, query, account).Scan(&profile.Account, &profile.Digest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, false, nil
		}
		return models.UserProfile{}, false, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, true, nil
}

// Insert stores a profile; the primary key makes the check atomic
func (s *Storage) Insert(ctx context.Context, account, digest string) error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}

	query := `INSERT INTO profiles (account, digest) VALUES (?, ?)`

	if _, err := s.db.ExecContext(ctx, query, account, digest); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// isUniqueViolation проверяет нарушение PRIMARY KEY / UNIQUE
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// без расширенных кодов различаем по тексту
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}
	return false
}
