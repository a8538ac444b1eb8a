package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/youshallpass/internal/models"
)

func (c *Cli) runAdd() error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	c.io.Println("=== Add Credential ===")
	c.io.Println()

	site, err := c.io.ReadInput("Website: ")
	if err != nil {
		return fmt.Errorf("failed to read website: %w", err)
	}

	account, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	secret, err := c.io.ReadPassword("Password (empty to generate): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	generated := false
	if secret == "" {
		secret, err = c.generator.Generate(c.genLength)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		generated = true
	}

	record, err := c.vault.Add(site, account, secret)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Credential saved!")
	c.io.Printf("ID: %s\n", record.ID)
	if generated {
		c.io.Printf("Generated password: %s\n", secret)
	}

	return nil
}

func (c *Cli) runList(query string) error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	records := c.vault.FilterBySite(query)
	if len(records) == 0 {
		if strings.TrimSpace(query) != "" {
			c.io.Printf("No credentials match %q.\n", query)
			return nil
		}
		c.io.Println("No credentials found.")
		c.io.Println("Use 'add' to add your first credential.")
		return nil
	}

	c.io.Printf("Found %d credential(s):\n", len(records))
	c.io.Println()

	// Номера соответствуют полному списку, чтобы show/copy/delete работали после find
	all := c.vault.List()
	for _, r := range records {
		c.io.Printf("%d. %s\n", position(all, r.ID), r.Site)
		c.io.Printf("   ID:       %s\n", r.ID)
		c.io.Printf("   Username: %s\n", r.Account)
		c.io.Printf("   Password: %s\n", r.MaskedSecret())
	}

	return nil
}

func (c *Cli) runShow(ref string) error {
	record, err := c.lookup(ref)
	if err != nil {
		return err
	}

	c.io.Printf("Website:  %s\n", record.Site)
	c.io.Printf("Username: %s\n", record.Account)
	c.io.Printf("Password: %s\n", record.Secret)
	c.io.Printf("Added:    %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}

func (c *Cli) runCopy(ref string) error {
	record, err := c.lookup(ref)
	if err != nil {
		return err
	}

	if err := c.clipboard.WriteAll(record.Secret); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	c.io.Printf("✓ Password for %s copied to clipboard\n", record.Site)
	return nil
}

func (c *Cli) runDelete(ref string) error {
	record, err := c.lookup(ref)
	if err != nil {
		return err
	}

	if err := c.vault.Delete(record.ID); err != nil {
		return err
	}

	c.io.Printf("✓ Credential for %s deleted\n", record.Site)
	return nil
}

func (c *Cli) lookup(ref string) (*models.CredentialRecord, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	id, err := c.resolveRecordID(ref)
	if err != nil {
		return nil, err
	}

	return c.vault.Reveal(id)
}

func position(records []*models.CredentialRecord, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i + 1
		}
	}
	return 0
}
