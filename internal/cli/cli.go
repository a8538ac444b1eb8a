// Package cli implements the youshallpass commands and the interactive shell.
package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/iudanet/youshallpass/internal/auth"
	"github.com/iudanet/youshallpass/internal/generator"
	"github.com/iudanet/youshallpass/internal/iocli"
	"github.com/iudanet/youshallpass/internal/vault"
)

var (
	errPasswordsMismatch = errors.New("Passwords do not match") //nolint:staticcheck
	errNotLoggedIn       = errors.New("not logged in, use 'login' first")
	errMissingArgument   = errors.New("missing argument")
)

// Clipboard copies text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Cli связывает терминал с сервисами приложения
type Cli struct {
	io        iocli.IO
	auth      *auth.Service
	vault     *vault.Vault
	generator *generator.Generator
	clipboard Clipboard
	owner     string // владелец записей в vault
	genLength int
}

// New creates a Cli; genLength is the default generated password length
func New(
	io iocli.IO,
	authService *auth.Service,
	v *vault.Vault,
	gen *generator.Generator,
	clip Clipboard,
	genLength int,
) *Cli {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if genLength <= 0 {
		genLength = generator.DefaultLength
	}

	return &Cli{
		io:        io,
		auth:      authService,
		vault:     v,
		generator: gen,
		clipboard: clip,
		genLength: genLength,
	}
}

// lastAuthError returns the service message as an error and clears it
func (c *Cli) lastAuthError() error {
	msg, ok := c.auth.LastError()
	if !ok {
		return nil
	}
	c.auth.ClearError()
	return errors.New(msg)
}

func (c *Cli) requireLogin() error {
	if !c.auth.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// resolveRecordID принимает номер из списка (с 1) или ID записи
func (c *Cli) resolveRecordID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errMissingArgument
	}

	if n, err := strconv.Atoi(ref); err == nil {
		records := c.vault.List()
		if n < 1 || n > len(records) {
			return "", vault.ErrRecordNotFound
		}
		return records[n-1].ID, nil
	}

	return ref, nil
}
