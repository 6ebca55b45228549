// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/models"
)

const maskedSecret = "********"

func (a *App) showCmd() *cobra.Command {
	var (
		reveal     bool
		copySecret bool
	)

	cmd := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one entry's details",
		Long: `Prints a single entry. The secret field (password, card number, account
number) stays masked unless --reveal is given; --copy places it on the
system clipboard without printing it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				vault, err := a.services.VaultService.Load(cmd.Context(), session)
				if err != nil {
					return err
				}

				entry := findEntry(&vault, args[0])
				if entry == nil {
					return fmt.Errorf("no entry with id %q", args[0])
				}

				if err := a.printEntry(entry, reveal); err != nil {
					return err
				}

				if copySecret {
					secret, ok := entrySecret(entry)
					if !ok {
						return fmt.Errorf("entry %q has no secret to copy", entry.Name)
					}
					if err := a.copyToClipboard(secret); err != nil {
						return fmt.Errorf("clipboard copy failed: %w", err)
					}
					fmt.Fprintf(a.out, "%s secret copied to clipboard\n", color.GreenString("✓"))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the secret in clear text")
	cmd.Flags().BoolVarP(&copySecret, "copy", "c", false, "copy the secret to the clipboard")

	return cmd
}

func (a *App) printEntry(entry *models.Entry, reveal bool) error {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "ID\t%s\n", entry.ID)
	fmt.Fprintf(w, "Name\t%s\n", entry.Name)
	fmt.Fprintf(w, "Type\t%s\n", entry.Type)
	if entry.Folder != "" {
		fmt.Fprintf(w, "Folder\t%s\n", entry.Folder)
	}

	switch entry.Type {
	case models.EntryLogin:
		fmt.Fprintf(w, "URL\t%s\n", entry.Login.URL)
		fmt.Fprintf(w, "Username\t%s\n", entry.Login.Username)
		fmt.Fprintf(w, "Password\t%s\n", maskUnless(reveal, entry.Login.Password))
	case models.EntryCard:
		fmt.Fprintf(w, "Cardholder\t%s\n", entry.Card.CardholderName)
		fmt.Fprintf(w, "Number\t%s\n", maskUnless(reveal, entry.Card.CardNumber))
		fmt.Fprintf(w, "Expiry\t%s\n", entry.Card.ExpiryDate)
		fmt.Fprintf(w, "CVV\t%s\n", maskUnless(reveal, entry.Card.CVV))
	case models.EntryIdentity:
		fmt.Fprintf(w, "First name\t%s\n", entry.Identity.FirstName)
		fmt.Fprintf(w, "Last name\t%s\n", entry.Identity.LastName)
		fmt.Fprintf(w, "Phone\t%s\n", entry.Identity.Phone)
	case models.EntryBankAccount:
		fmt.Fprintf(w, "Bank\t%s\n", entry.BankAccount.BankName)
		fmt.Fprintf(w, "Routing\t%s\n", entry.BankAccount.RoutingNumber)
		fmt.Fprintf(w, "Account\t%s\n", maskUnless(reveal, entry.BankAccount.AccountNumber))
	}

	if entry.Notes != "" {
		fmt.Fprintf(w, "Notes\t%s\n", entry.Notes)
	}
	if len(entry.SharedWith) > 0 {
		fmt.Fprintf(w, "Shared with\t%d contact(s)\n", len(entry.SharedWith))
	}

	return w.Flush()
}

// entrySecret returns the field --copy places on the clipboard.
func entrySecret(entry *models.Entry) (string, bool) {
	switch entry.Type {
	case models.EntryLogin:
		return entry.Login.Password, true
	case models.EntryCard:
		return entry.Card.CardNumber, true
	case models.EntryBankAccount:
		return entry.BankAccount.AccountNumber, true
	default:
		return "", false
	}
}

func maskUnless(reveal bool, secret string) string {
	if reveal {
		return secret
	}
	return maskedSecret
}
