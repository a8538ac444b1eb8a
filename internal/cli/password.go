package cli

import (
	"fmt"

	"github.com/iudanet/youshallpass/internal/validation"
)

func (c *Cli) runGenerate(length int) error {
	if length <= 0 {
		length = c.genLength
	}

	password, err := c.generator.Generate(length)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	c.io.Println(password)
	return nil
}

// runCheckPassword печатает каждое нарушенное правило политики
func (c *Cli) runCheckPassword() error {
	candidate, err := c.io.ReadPassword("Password to check: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	failed := validation.FailedRules(candidate)
	if len(failed) == 0 {
		c.io.Println("✓ Password meets the policy")
		return nil
	}

	c.io.Println("✗ Password does not meet the policy:")
	for _, rule := range failed {
		c.io.Printf("  - %s\n", rule)
	}

	return validation.ErrPasswordPolicy
}
