package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id. Они фиксированы: любое изменение меняет все дайджесты.
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах (hex = 64 символа)
	Argon2KeyLen = 32
	// MinSaltSize - минимальный размер соли в байтах
	MinSaltSize = 16
)

// Argon2idHasher derives digests with Argon2id over an installation-wide salt.
// Deterministic for a given salt, so digests stay comparable across runs.
type Argon2idHasher struct {
	salt []byte
}

// Compile-time check that Argon2idHasher implements Hasher
var _ Hasher = (*Argon2idHasher)(nil)

// NewArgon2idHasher creates a hasher from a base64-encoded salt
func NewArgon2idHasher(saltBase64 string) (*Argon2idHasher, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("salt must be at least %d bytes, got %d", MinSaltSize, len(salt))
	}

	return &Argon2idHasher{salt: salt}, nil
}

// Hash returns hex(argon2id(secret, salt))
func (h *Argon2idHasher) Hash(secret string) string {
	key := argon2.IDKey([]byte(secret), h.salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return hex.EncodeToString(key)
}

// Name returns "argon2id"
func (h *Argon2idHasher) Name() string {
	return AlgorithmArgon2id
}

// NewHasher builds the hasher named by algorithm.
// saltBase64 is only used by argon2id.
func NewHasher(algorithm, saltBase64 string) (Hasher, error) {
	switch algorithm {
	case "", AlgorithmSHA256:
		return SHA256Hasher{}, nil
	case AlgorithmArgon2id:
		return NewArgon2idHasher(saltBase64)
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
}
