// Package vault keeps the per-site credential records of the logged-in owner.
// Records are held in memory only and are lost when the process exits.
package vault

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/youshallpass/internal/models"
)

var (
	// ErrEmptyField indicates that site, account or secret is blank
	ErrEmptyField = errors.New("site, account and password are required")

	// ErrRecordNotFound indicates an unknown record ID
	ErrRecordNotFound = errors.New("record not found")
)

// Vault is an insertion-ordered in-memory list of credential records
type Vault struct {
	now     func() time.Time
	records []*models.CredentialRecord
	mu      sync.RWMutex
}

// New creates an empty vault
func New() *Vault {
	return &Vault{now: time.Now}
}

// Add stores a new record and returns a copy of it
func (v *Vault) Add(site, account, secret string) (*models.CredentialRecord, error) {
	// Все три поля обязательны
	if strings.TrimSpace(site) == "" || strings.TrimSpace(account) == "" || strings.TrimSpace(secret) == "" {
		return nil, ErrEmptyField
	}

	record := &models.CredentialRecord{
		ID:        uuid.New().String(),
		Site:      site,
		Account:   account,
		Secret:    secret,
		CreatedAt: v.now(),
	}

	v.mu.Lock()
	v.records = append(v.records, record)
	v.mu.Unlock()

	return clone(record), nil
}

// List returns copies of all records in insertion order
func (v *Vault) List() []*models.CredentialRecord {
	return v.FilterBySite("")
}

// FilterBySite returns records whose site contains query, ignoring case.
// A blank query returns every record.
func (v *Vault) FilterBySite(query string) []*models.CredentialRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()

	result := make([]*models.CredentialRecord, 0, len(v.records))
	for _, r := range v.records {
		if r.MatchesSite(query) {
			result = append(result, clone(r))
		}
	}
	return result
}

// Reveal returns a copy of the record with the given ID, secret included
func (v *Vault) Reveal(id string) (*models.CredentialRecord, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	idx := v.indexLocked(id)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	return clone(v.records[idx]), nil
}

// Delete removes the record with the given ID
func (v *Vault) Delete(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	idx := v.indexLocked(id)
	if idx < 0 {
		return ErrRecordNotFound
	}

	v.records = append(v.records[:idx], v.records[idx+1:]...)
	return nil
}

// Clear drops every record
func (v *Vault) Clear() {
	v.mu.Lock()
	v.records = nil
	v.mu.Unlock()
}

// Len returns the number of stored records
func (v *Vault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.records)
}

func (v *Vault) indexLocked(id string) int {
	for i, r := range v.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func clone(r *models.CredentialRecord) *models.CredentialRecord {
	c := *r
	return &c
}
