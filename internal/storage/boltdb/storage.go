package boltdb

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/iudanet/youshallpass/internal/storage"
)

var (
	// BoltDB bucket names
	bucketProfiles = []byte("profiles")
)

// openTimeout ограничивает ожидание файловой блокировки BoltDB другим процессом
const openTimeout = time.Second

// Storage represents BoltDB profile storage
type Storage struct {
	db     *bbolt.DB
	closed atomic.Bool
}

// Compile-time check that Storage implements storage.ProfileStore
var _ storage.ProfileStore = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection; repeated calls are no-ops
func (s *Storage) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// wrapClosed переводит ошибку bbolt о закрытой БД (гонка с Close) в ErrStorageClosed
func wrapClosed(err error) error {
	if errors.Is(err, bolterrors.ErrDatabaseNotOpen) {
		return storage.ErrStorageClosed
	}
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketProfiles); err != nil {
			return fmt.Errorf("failed to create profiles bucket: %w", err)
		}
		return nil
	})
}
