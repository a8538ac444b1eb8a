package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Symbols is the special-character set required by the password policy.
// The generator draws its symbols from the same constant.
const Symbols = `!@#$%^&*(),.?":{}|<>`

// MinPasswordLen минимальная длина master password (в символах, не байтах)
const MinPasswordLen = 8

// ErrPasswordPolicy is wrapped by every ValidatePassword failure.
var ErrPasswordPolicy = errors.New("password does not meet the policy")

// rule описывает одно требование политики паролей
type rule struct {
	check   func(password string) bool
	message string
}

// passwordRules перечисляет требования в том порядке, в котором они сообщаются пользователю
var passwordRules = []rule{
	{
		check:   func(p string) bool { return utf8.RuneCountInString(p) >= MinPasswordLen },
		message: fmt.Sprintf("must be at least %d characters long", MinPasswordLen),
	},
	{
		check:   func(p string) bool { return containsAny(p, isUpper) },
		message: "must contain at least one capital letter (A-Z)",
	},
	{
		check:   func(p string) bool { return containsAny(p, isDigit) },
		message: "must contain at least one number (0-9)",
	},
	{
		check:   func(p string) bool { return strings.ContainsAny(p, Symbols) },
		message: "must contain at least one special character (" + Symbols + ")",
	},
	{
		check:   func(p string) bool { return !containsAny(p, isLineTerminator) },
		message: "must not contain line breaks",
	},
}

// ValidatePassword проверяет master password на соответствие политике:
// минимум 8 символов, хотя бы одна заглавная латинская буква, одна цифра
// и один спецсимвол из Symbols. Строчные буквы не обязательны, верхней
// границы длины нет.
// The returned error lists every rule the candidate breaks.
func ValidatePassword(password string) error {
	failed := FailedRules(password)
	if len(failed) == 0 {
		return nil
	}

	return fmt.Errorf("%w: password %s", ErrPasswordPolicy, strings.Join(failed, "; "))
}

// FailedRules returns the message of every rule password breaks, in policy order.
// nil means the password is acceptable.
func FailedRules(password string) []string {
	var failed []string
	for _, r := range passwordRules {
		if !r.check(password) {
			failed = append(failed, r.message)
		}
	}
	return failed
}

// IsValidPassword reports whether password satisfies the policy.
func IsValidPassword(password string) bool {
	return ValidatePassword(password) == nil
}

func containsAny(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsLetter reports whether r is an ASCII letter.
// Только латиница, как в алфавите генератора.
func IsLetter(r rune) bool { return isUpper(r) || (r >= 'a' && r <= 'z') }
