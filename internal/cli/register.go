package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
)

func (a *App) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account and keypair",
		Long: `Generates your RSA keypair, encrypts the private key under your master
password, and registers the account on the relay. The master password and
the plaintext private key never leave this machine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password, err := a.credentials()
			if err != nil {
				return err
			}

			confirm, err := a.readPassword("Confirm master password: ")
			if err != nil {
				return err
			}
			if confirm != password {
				return errors.New("passwords do not match")
			}

			if err := a.services.AuthService.Register(cmd.Context(), email, password); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s account %s registered\n", color.GreenString("✓"), color.YellowString(email))
			fmt.Fprintf(a.out, "%s keep your master password safe: it cannot be recovered\n", color.CyanString("→"))
			return nil
		},
	}
}

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify your credentials and unlock the vault once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				if _, err := a.services.VaultService.Load(cmd.Context(), session); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s logged in as %s, vault unlocked\n", color.GreenString("✓"), color.YellowString(session.Email()))
				return nil
			})
		},
	}
}
