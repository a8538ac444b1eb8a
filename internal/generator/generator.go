// Package generator produces random master passwords that satisfy the
// validation password policy.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/youshallpass/internal/validation"
)

const (
	// DefaultLength длина пароля по умолчанию
	DefaultLength = 16
	// DefaultMaxAttempts ограничение числа перегенераций строки целиком
	DefaultMaxAttempts = 1000

	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
)

// Alphabet is the character pool: ASCII letters, digits and the policy symbols.
const Alphabet = letters + digits + validation.Symbols

var (
	// ErrInvalidLength indicates a requested length below 1
	ErrInvalidLength = errors.New("password length must be at least 1")

	// ErrGenerationExhausted indicates that no policy-compliant password was
	// produced within the attempt bound
	ErrGenerationExhausted = errors.New("password generation exhausted")
)

// Generator creates policy-compliant passwords
type Generator struct {
	random      io.Reader
	maxAttempts int
}

// New creates a generator.
// random == nil uses crypto/rand.Reader; maxAttempts <= 0 uses DefaultMaxAttempts.
func New(random io.Reader, maxAttempts int) *Generator {
	if random == nil {
		random = rand.Reader
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Generator{
		random:      random,
		maxAttempts: maxAttempts,
	}
}

// Generate returns a password of length characters whose first character is
// a letter and which passes validation.ValidatePassword.
func (g *Generator) Generate(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	// Короче минимума политика не выполнима ни при каком наборе символов
	if length < validation.MinPasswordLen {
		return "", fmt.Errorf("%w: length %d is below the policy minimum of %d",
			ErrGenerationExhausted, length, validation.MinPasswordLen)
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate, err := g.draw(length)
		if err != nil {
			return "", err
		}

		first, _ := utf8.DecodeRuneInString(candidate)
		if validation.IsLetter(first) && validation.IsValidPassword(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no compliant password after %d attempts", ErrGenerationExhausted, g.maxAttempts)
}

// draw выбирает length символов алфавита равномерно
func (g *Generator) draw(length int) (string, error) {
	poolSize := big.NewInt(int64(len(Alphabet)))

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := rand.Int(g.random, poolSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		sb.WriteByte(Alphabet[idx.Int64()])
	}

	return sb.String(), nil
}
