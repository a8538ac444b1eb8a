// Package backends opens a storage.ProfileStore by backend name.
package backends

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/youshallpass/internal/storage"
	"github.com/iudanet/youshallpass/internal/storage/boltdb"
	"github.com/iudanet/youshallpass/internal/storage/file"
	"github.com/iudanet/youshallpass/internal/storage/sqlite"
)

// Имена файлов баз данных внутри каталога данных
const (
	BoltFileName   = "profiles.db"
	SQLiteFileName = "profiles.sqlite"
)

// Open returns the profile store named by backend, rooted at dataDir.
// An empty backend selects the text file store.
func Open(ctx context.Context, backend, dataDir string) (storage.ProfileStore, error) {
	switch backend {
	case "", storage.BackendFile:
		// Файловый backend сам создает каталог при первой регистрации
		return file.New(file.NewOSProvider(dataDir)), nil
	case storage.BackendBolt:
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return boltdb.New(ctx, filepath.Join(dataDir, BoltFileName))
	case storage.BackendSQLite:
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return sqlite.New(ctx, filepath.Join(dataDir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, backend)
	}
}
