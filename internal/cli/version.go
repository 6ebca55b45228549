package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "Build version: %s\n", a.buildVersion)
			fmt.Fprintf(a.out, "Build date: %s\n", a.buildDate)
			fmt.Fprintf(a.out, "Build commit: %s\n", a.buildCommit)
		},
	}
}
