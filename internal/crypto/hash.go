package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher превращает master password в необратимый дайджест.
// Hash must be deterministic: equal secrets always give equal digests,
// rendered as fixed-length lowercase hex.
type Hasher interface {
	// Hash returns the hex digest of secret's UTF-8 bytes
	Hash(secret string) string

	// Name identifies the algorithm (used in logs and config)
	Name() string
}

// Algorithm names accepted by NewHasher
const (
	AlgorithmSHA256   = "sha256"
	AlgorithmArgon2id = "argon2id"
)

// SHA256Hasher хеширует секрет через SHA256.
// Формат совместим с уже существующими файлами профилей.
type SHA256Hasher struct{}

// Compile-time check that SHA256Hasher implements Hasher
var _ Hasher = SHA256Hasher{}

// Hash returns hex(sha256(secret))
func (SHA256Hasher) Hash(secret string) string {
	hash := sha256.Sum256([]byte(secret))

	// Возвращаем hex-encoded строку (64 символа)
	return hex.EncodeToString(hash[:])
}

// Name returns "sha256"
func (SHA256Hasher) Name() string {
	return AlgorithmSHA256
}

// VerifySecret хеширует кандидата и сравнивает дайджесты целиком.
// Сравнение обычное (не constant-time), как и в исходном поведении.
func VerifySecret(h Hasher, secret, digest string) bool {
	if digest == "" {
		return false
	}
	return h.Hash(secret) == digest
}
