package validation

import (
	"errors"
	"strings"
)

var (
	// ErrAccountEmpty indicates a blank account name
	ErrAccountEmpty = errors.New("account name cannot be empty")

	// ErrAccountInvalidChars indicates an account name that would break the
	// one-record-per-line profile format
	ErrAccountInvalidChars = errors.New("account name cannot contain ':' or line breaks")
)

// ValidateAccountName проверяет имя учетной записи.
// Имя непрозрачно для системы: допустимы любые символы, кроме ':' и
// переводов строки, которые являются разделителями в файле профилей.
func ValidateAccountName(account string) error {
	if account == "" {
		return ErrAccountEmpty
	}

	if strings.ContainsRune(account, ':') || containsAny(account, isLineTerminator) {
		return ErrAccountInvalidChars
	}

	return nil
}
