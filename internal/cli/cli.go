// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

// Package cli is the command-line surface of the vaultshare client. Each
// command logs in, performs one operation against the decrypted in-memory
// vault, flushes any pending save, and exits; the master password is read
// from the terminal and held only for the duration of key derivation.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/service"
)

// App wires the client services into the cobra command tree.
type App struct {
	services *service.ClientServices
	logger   *logger.Logger

	out io.Writer
	in  io.Reader

	// copyToClipboard places a secret on the system clipboard; swapped
	// out in tests where no clipboard exists.
	copyToClipboard func(text string) error

	// email is the account flag shared by all commands.
	email string

	buildVersion string
	buildDate    string
	buildCommit  string
}

func New(services *service.ClientServices, logger *logger.Logger) *App {
	return &App{
		services:        services,
		logger:          logger,
		out:             os.Stdout,
		in:              os.Stdin,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Root assembles the command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "vaultshare",
		Short: "End-to-end encrypted password vault with sharing",
		Long: `vaultshare keeps your passwords in a single encrypted vault and lets you
share individual entries with other users. All encryption happens on this
machine: the relay server only ever stores ciphertext.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.email, "email", "e", os.Getenv("VAULTSHARE_EMAIL"), "account email")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.listCmd(),
		a.showCmd(),
		a.addCmd(),
		a.shareCmd(),
		a.inboxCmd(),
		a.acceptCmd(),
		a.rejectCmd(),
		a.versionCmd(),
	)

	return root
}

// SetBuildInfo records the ldflags-injected build metadata shown by the
// version command.
func (a *App) SetBuildInfo(version, date, commit string) {
	a.buildVersion = orNA(version)
	a.buildDate = orNA(date)
	a.buildCommit = orNA(commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Execute runs the command tree and reports the exit code.
func (a *App) Execute(ctx context.Context) error {
	return a.Root().ExecuteContext(ctx)
}

// withSession logs in, runs fn with the unlocked session, and always wipes
// the key material afterwards. Pending debounced saves are flushed before
// the process exits, so a command never loses its own mutation.
func (a *App) withSession(ctx context.Context, fn func(session *service.Session) error) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	session, err := a.services.AuthService.Login(ctx, email, password)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(session)
	defer func() {
		if err := a.services.Saver.Flush(ctx); err != nil {
			a.logger.Err(err).Msg("error flushing pending vault save")
		}
	}()

	return fn(session)
}
