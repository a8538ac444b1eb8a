// Package file implements storage.ProfileStore as an append-only text file.
//
// Format (one record per line, UTF-8):
//
//	accountName:hexDigest\n
//
// Lines that do not split into exactly two ':'-separated fields are ignored.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/iudanet/youshallpass/internal/models"
	"github.com/iudanet/youshallpass/internal/storage"
)

const (
	// DirName каталог с данными профилей внутри каталога приложения
	DirName = "userdata"
	// FileName файл профилей
	FileName = "user_profiles.txt"

	separator = ":"
)

// ErrInvalidRecord indicates a field that would corrupt the line format
var ErrInvalidRecord = errors.New("record field contains ':' or a line break")

// Store represents the text-file profile storage
type Store struct {
	provider Provider
	dir      string
	path     string
	mu       sync.Mutex
	closed   bool
}

// Compile-time check that Store implements storage.ProfileStore
var _ storage.ProfileStore = (*Store)(nil)

// New creates a file store on top of provider.
// Nothing is created on disk until the first Insert.
func New(provider Provider) *Store {
	return &Store{
		provider: provider,
		dir:      DirName,
		path:     path.Join(DirName, FileName),
	}
}

// Path returns the record file path relative to the provider root
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the record file exists
func (s *Store) Exists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, storage.ErrStorageClosed
	}

	return s.provider.Exists(s.path)
}

// FindByAccount scans all records, first match wins
func (s *Store) FindByAccount(ctx context.Context, account string) (models.UserProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.UserProfile{}, false, storage.ErrStorageClosed
	}

	digest, found, err := s.findLocked(account)
	if err != nil || !found {
		return models.UserProfile{}, found, err
	}

	return models.UserProfile{Account: account, Digest: digest}, true, nil
}

// Insert appends a new record unless the account already exists.
// Проверка и запись выполняются под одной блокировкой.
func (s *Store) Insert(ctx context.Context, account, digest string) error {
	if !validField(account) || !validField(digest) {
		return ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	_, found, err := s.findLocked(account)
	if err != nil {
		return err
	}
	if found {
		return storage.ErrDuplicateAccount
	}

	// Каталог создается при первой успешной регистрации
	if err := s.provider.MkdirsIfAbsent(s.dir); err != nil {
		return err
	}

	if err := s.provider.AppendLine(s.path, account+separator+digest); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// Close marks the store closed; the provider holds no open handles
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *Store) findLocked(account string) (string, bool, error) {
	lines, err := s.provider.ReadAllLines(s.path)
	if err != nil {
		// Файла еще нет - значит и профиля нет
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}

	for _, line := range lines {
		parts := strings.Split(line, separator)
		if len(parts) != 2 {
			// Поврежденные строки пропускаем
			continue
		}
		if parts[0] == account {
			return parts[1], true, nil
		}
	}

	return "", false, nil
}

func validField(v string) bool {
	return !strings.ContainsAny(v, separator+"\r\n")
}
