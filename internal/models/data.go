package models

import (
	"strings"
	"time"
)

// CredentialRecord представляет сохраненную пару логин/пароль для сайта.
// Записи живут только в памяти в течение сессии.
type CredentialRecord struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время добавления записи
	ID        string    `json:"id"`         // ID уникальный идентификатор записи (UUID)
	Site      string    `json:"site"`       // Site сайт или сервис (например, "github.com")
	Account   string    `json:"account"`    // Account логин или email на сайте
	Secret    string    `json:"secret"`     // Secret пароль в открытом виде
}

// MatchesSite сообщает, содержит ли Site подстроку query без учета регистра.
// Пустой query совпадает с любой записью.
func (r *CredentialRecord) MatchesSite(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Site), strings.ToLower(query))
}

// MaskedSecret returns the secret replaced with asterisks of the same rune length
func (r *CredentialRecord) MaskedSecret() string {
	return strings.Repeat("*", len([]rune(r.Secret)))
}
