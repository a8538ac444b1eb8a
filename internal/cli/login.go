package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем master password
	masterPassword, err := c.io.ReadPassword("Master password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.auth.Login(ctx, username, masterPassword)
	if !c.auth.IsAuthenticated() {
		c.switchOwner("")
		return c.lastAuthError()
	}
	c.switchOwner(username)

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", username)

	return nil
}

// switchOwner привязывает vault к учетной записи; записи другого владельца сбрасываются
func (c *Cli) switchOwner(account string) {
	if c.owner == account {
		return
	}
	c.vault.Clear()
	c.owner = account
}
