// Package auth implements profile creation and login against a ProfileStore
// and keeps the resulting session state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/youshallpass/internal/crypto"
	"github.com/iudanet/youshallpass/internal/storage"
	"github.com/iudanet/youshallpass/internal/validation"
)

// Service предоставляет функции авторизации и хранит состояние сессии
type Service struct {
	store   storage.ProfileStore
	hasher  crypto.Hasher
	logger  *slog.Logger
	session Session
	mu      sync.RWMutex
}

// NewService создает новый сервис авторизации.
// nil hasher означает sha256, nil logger означает slog.Default().
func NewService(store storage.ProfileStore, hasher crypto.Hasher, logger *slog.Logger) *Service {
	if hasher == nil {
		hasher = crypto.SHA256Hasher{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// Register validates and stores a new profile.
// Errors wrap ErrPolicyViolation, ErrInvalidAccount, ErrDuplicateAccount or ErrStorageFailure.
func (s *Service) Register(ctx context.Context, account, secret string) error {
	// Политика проверяется первой
	if err := validation.ValidatePassword(secret); err != nil {
		return fmt.Errorf("%w: %w", ErrPolicyViolation, err)
	}
	if err := validation.ValidateAccountName(account); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	digest := s.hasher.Hash(secret)

	if err := s.store.Insert(ctx, account, digest); err != nil {
		if errors.Is(err, storage.ErrDuplicateAccount) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("%w: failed to insert profile: %w", ErrStorageFailure, err)
	}

	s.logger.Info("profile created", "account", account, "hash", s.hasher.Name())
	return nil
}

// Authenticate checks account and secret against the store.
// Errors wrap ErrProfileNotFound, ErrInvalidCredentials or ErrStorageFailure.
func (s *Service) Authenticate(ctx context.Context, account, secret string) error {
	exists, err := s.store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to check profile store: %w", ErrStorageFailure, err)
	}
	if !exists {
		return ErrProfileNotFound
	}

	profile, found, err := s.store.FindByAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("%w: failed to find profile: %w", ErrStorageFailure, err)
	}
	if !found {
		return ErrInvalidCredentials
	}

	if !crypto.VerifySecret(s.hasher, secret, profile.Digest) {
		return ErrInvalidCredentials
	}

	return nil
}

// CreateProfile registers a profile and reports success.
// On failure LastError holds a user-facing message; the authentication flag is untouched.
func (s *Service) CreateProfile(ctx context.Context, account, secret string) bool {
	err := s.Register(ctx, account, secret)
	if err == nil {
		return true
	}

	var msg string
	switch {
	case errors.Is(err, ErrPolicyViolation):
		msg = MsgPolicyViolation
	case errors.Is(err, validation.ErrAccountEmpty):
		msg = MsgAccountEmpty
	case errors.Is(err, ErrInvalidAccount):
		msg = MsgAccountInvalid
	case errors.Is(err, ErrDuplicateAccount):
		msg = MsgDuplicateAccount
	default:
		s.logger.Error("failed to create user profile", "account", account, "error", err)
		msg = MsgCreateFailed
	}

	s.logger.Debug("profile creation rejected", "account", account, "reason", msg)
	s.setError(msg)
	return false
}

// Login authenticates and updates the session.
// Success sets Authenticated and clears LastError; any failure logs the session out.
func (s *Service) Login(ctx context.Context, account, secret string) {
	err := s.Authenticate(ctx, account, secret)
	if err == nil {
		s.mu.Lock()
		s.session = Session{Authenticated: true}
		s.mu.Unlock()

		s.logger.Info("login succeeded", "account", account)
		return
	}

	msg := MsgInvalidCredentials
	switch {
	case errors.Is(err, ErrProfileNotFound):
		msg = MsgProfileNotFound
	case errors.Is(err, ErrStorageFailure):
		s.logger.Error("failed to read profile store", "account", account, "error", err)
	}

	s.logger.Info("login failed", "account", account, "reason", msg)

	s.mu.Lock()
	s.session = Session{LastError: &msg}
	s.mu.Unlock()
}

// ClearError drops LastError and keeps the authentication flag
func (s *Service) ClearError() {
	s.mu.Lock()
	s.session.LastError = nil
	s.mu.Unlock()
}

// Session returns a copy of the current session
func (s *Service) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.clone()
}

// IsAuthenticated reports whether the last login succeeded
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated
}

// LastError returns the last user-facing error message, if any
func (s *Service) LastError() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.LastError == nil {
		return "", false
	}
	return *s.session.LastError, true
}

func (s *Service) setError(msg string) {
	s.mu.Lock()
	s.session.LastError = &msg
	s.mu.Unlock()
}
