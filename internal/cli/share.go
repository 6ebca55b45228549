// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/models"
)

func (a *App) shareCmd() *cobra.Command {
	var recipients []string

	cmd := &cobra.Command{
		Use:   "share <entry-id>",
		Short: "Share one entry with other users",
		Long: `Shares a copy of one entry with each recipient. Every recipient gets the
entry sealed under a fresh one-time key, wrapped with their public key; the
relay can route the envelope but never open it. Recipients that fail (e.g.
not registered) do not stop delivery to the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(recipients) == 0 {
				return fmt.Errorf("at least one --to recipient is required")
			}

			return a.withSession(cmd.Context(), func(session *service.Session) error {
				vault, err := a.services.VaultService.Load(cmd.Context(), session)
				if err != nil {
					return err
				}

				entry := findEntry(&vault, args[0])
				if entry == nil {
					return fmt.Errorf("no entry with id %q", args[0])
				}

				outcomes := a.services.SharingService.Send(cmd.Context(), session, entry, &vault, recipients)

				failed := 0
				for _, o := range outcomes {
					if o.Ok() {
						fmt.Fprintf(a.out, "%s shared with %s (envelope %s)\n",
							color.GreenString("✓"), o.ContactEmail, shortID(o.EnvelopeID))
						continue
					}
					failed++
					fmt.Fprintf(a.out, "%s %s: %v\n", color.RedString("✗"), o.ContactEmail, o.Err)
				}

				if failed == len(outcomes) {
					return fmt.Errorf("sharing failed for all %d recipients", failed)
				}

				// persist the recorded grants and any new contact
				a.services.Saver.Schedule(session, vault)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&recipients, "to", nil, "recipient email (repeatable)")

	return cmd
}

// findEntry resolves an entry by full id or by unambiguous short prefix.
func findEntry(vault *models.VaultData, id string) *models.Entry {
	if e := vault.EntryByID(id); e != nil {
		return e
	}

	var match *models.Entry
	for i := range vault.Entries {
		if strings.HasPrefix(vault.Entries[i].ID, id) {
			if match != nil {
				return nil // ambiguous prefix
			}
			match = &vault.Entries[i]
		}
	}
	return match
}
