package storage

import (
	"context"

	"github.com/iudanet/youshallpass/internal/models"
)

//go:generate moq -out profile_mock.go . ProfileStore

// ProfileStore defines durable storage of master profiles: account name -> secret digest.
// Implementations must make the check-then-insert in Insert atomic, so two
// concurrent inserts of the same account can never both succeed.
type ProfileStore interface {
	// Exists reports whether any profile data has been persisted yet
	// (отличает "хранилища еще нет" от "хранилище пустое")
	Exists(ctx context.Context) (bool, error)

	// FindByAccount returns the stored profile for account.
	// found == false means there is no such profile.
	FindByAccount(ctx context.Context, account string) (profile models.UserProfile, found bool, err error)

	// Insert stores a new profile.
	// Returns ErrDuplicateAccount if the account already exists.
	Insert(ctx context.Context, account, digest string) error

	// Close releases underlying resources
	Close() error
}

// Имена поддерживаемых backend'ов хранилища профилей
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Backends lists the supported backend names, default first
var Backends = []string{BackendFile, BackendBolt, BackendSQLite}
