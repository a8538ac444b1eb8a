package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/youshallpass/internal/models"
	"github.com/iudanet/youshallpass/internal/storage"
)

// Exists reports whether at least one profile is stored
func (s *Storage) Exists(ctx context.Context) (bool, error) {
	if s.closed.Load() {
		return false, storage.ErrStorageClosed
	}

	var exists bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		k, _ := bucket.Cursor().First()
		exists = k != nil
		return nil
	})
	if err != nil {
		return false, wrapClosed(err)
	}

	return exists, nil
}

// FindByAccount retrieves the profile stored for account
func (s *Storage) FindByAccount(ctx context.Context, account string) (models.UserProfile, bool, error) {
	if s.closed.Load() {
		return models.UserProfile{}, false, storage.ErrStorageClosed
	}

	var profile models.UserProfile
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		// Значение валидно только внутри транзакции, поэтому копируем в строку
		if v := bucket.Get([]byte(account)); v != nil {
			profile = models.UserProfile{Account: account, Digest: string(v)}
			found = true
		}
		return nil
	})
	if err != nil {
		return models.UserProfile{}, false, wrapClosed(err)
	}

	return profile, found, nil
}

// Insert stores a profile; check and put happen in one write transaction
func (s *Storage) Insert(ctx context.Context, account, digest string) error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		key := []byte(account)
		if bucket.Get(key) != nil {
			return storage.ErrDuplicateAccount
		}

		if err := bucket.Put(key, []byte(digest)); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		return nil
	})
	return wrapClosed(err)
}
