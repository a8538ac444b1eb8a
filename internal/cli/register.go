package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/youshallpass/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем master password
	masterPassword, err := c.io.ReadPassword(fmt.Sprintf("Master password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Подтверждение пароля
	confirmPassword, err := c.io.ReadPassword("Confirm master password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if masterPassword != confirmPassword {
		return errPasswordsMismatch
	}

	if !c.auth.CreateProfile(ctx, username, masterPassword) {
		return c.lastAuthError()
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Username: %s\n", username)
	c.io.Println()
	c.io.Println("⚠️  IMPORTANT: Remember your master password!")
	c.io.Println("   There is no way to recover it.")

	return nil
}
