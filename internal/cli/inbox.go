package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/models"
)

func (a *App) inboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "List shares waiting for you",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				envelopes, err := a.services.SharingService.Inbox(cmd.Context())
				if err != nil {
					return err
				}

				if len(envelopes) == 0 {
					fmt.Fprintf(a.out, "%s inbox is empty\n", color.CyanString("→"))
					return nil
				}

				w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tFROM\tRECEIVED")
				for _, env := range envelopes {
					fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(env.ID), env.SenderEmail, env.CreatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}
}

func (a *App) acceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <envelope-id>",
		Short: "Accept a shared entry into your vault",
		Long: `Decrypts one pending share with your private key and files the entry into
the "` + models.SharedFolder + `" folder. The envelope is consumed on accept: a copy
already taken on another device cannot be taken again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				vault, err := a.services.VaultService.Load(cmd.Context(), session)
				if err != nil {
					return err
				}

				envelope, err := a.findEnvelope(cmd, args[0])
				if err != nil {
					return err
				}

				entry, err := a.services.SharingService.Accept(cmd.Context(), session, *envelope, &vault)
				if err != nil {
					return err
				}

				a.services.Saver.Schedule(session, vault)

				fmt.Fprintf(a.out, "%s accepted %s from %s into %q\n",
					color.GreenString("✓"), color.YellowString(entry.Name), envelope.SenderEmail, entry.Folder)
				return nil
			})
		},
	}
}

func (a *App) rejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <envelope-id>",
		Short: "Reject a pending share without reading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				envelope, err := a.findEnvelope(cmd, args[0])
				if err != nil {
					return err
				}

				if err := a.services.SharingService.Reject(cmd.Context(), *envelope); err != nil {
					return err
				}

				fmt.Fprintf(a.out, "%s rejected share %s from %s\n",
					color.GreenString("✓"), shortID(envelope.ID), envelope.SenderEmail)
				return nil
			})
		},
	}
}

// findEnvelope resolves a pending envelope by full id or short prefix.
func (a *App) findEnvelope(cmd *cobra.Command, id string) (*models.ShareEnvelope, error) {
	envelopes, err := a.services.SharingService.Inbox(cmd.Context())
	if err != nil {
		return nil, err
	}

	var match *models.ShareEnvelope
	for i := range envelopes {
		if envelopes[i].ID == id {
			return &envelopes[i], nil
		}
		if strings.HasPrefix(envelopes[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("envelope id %q is ambiguous", id)
			}
			match = &envelopes[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no pending share with id %q", id)
	}
	return match, nil
}
