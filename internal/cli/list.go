package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/models"
)

func (a *App) listCmd() *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				vault, err := a.services.VaultService.Load(cmd.Context(), session)
				if err != nil {
					return err
				}

				entries := vault.Entries
				if folder != "" {
					entries = filterByFolder(entries, folder)
				}
				if len(entries) == 0 {
					fmt.Fprintf(a.out, "%s vault is empty\n", color.CyanString("→"))
					return nil
				}

				sort.Slice(entries, func(i, j int) bool {
					return entries[i].Name < entries[j].Name
				})

				w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTYPE\tFOLDER")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(e.ID), e.Name, e.Type, e.Folder)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "only entries in this folder")

	return cmd
}

func filterByFolder(entries []models.Entry, folder string) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Folder, folder) {
			out = append(out, e)
		}
	}
	return out
}

// shortID abbreviates a UUID for table output; full ids still work as
// command arguments.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
