package auth

import (
	"errors"

	"github.com/iudanet/youshallpass/internal/storage"
)

var (
	// ErrPolicyViolation indicates the secret does not satisfy the password policy
	ErrPolicyViolation = errors.New("password policy violation")

	// ErrInvalidAccount indicates an account name that cannot be stored
	ErrInvalidAccount = errors.New("invalid account name")

	// ErrDuplicateAccount indicates the account name is already registered
	ErrDuplicateAccount = storage.ErrDuplicateAccount

	// ErrProfileNotFound indicates that no profile store exists yet
	ErrProfileNotFound = errors.New("user data not found")

	// ErrInvalidCredentials indicates an unknown account or a wrong secret.
	// Оба случая намеренно неразличимы для вызывающего.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrStorageFailure wraps any other profile store error
	ErrStorageFailure = errors.New("profile storage failure")
)

// Сообщения, которые видит пользователь
const (
	MsgPolicyViolation    = "Password must contain at least one number, one capital letter, and one special character"
	MsgAccountEmpty       = "Username cannot be empty"
	MsgAccountInvalid     = "Username cannot contain ':' or line breaks"
	MsgDuplicateAccount   = "Username already exists"
	MsgCreateFailed       = "Failed to create user profile"
	MsgProfileNotFound    = "User data not found"
	MsgInvalidCredentials = "Invalid username or password"
)
