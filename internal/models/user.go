package models

// UserProfile представляет учетную запись владельца устройства.
// Профиль создается один раз и больше не изменяется.
type UserProfile struct {
	Account string `json:"account"` // уникальное имя учетной записи
	Digest  string `json:"digest"`  // hex-дайджест master password
}
