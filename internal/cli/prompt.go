package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoEmail = errors.New("no account email: pass --email or set VAULTSHARE_EMAIL")

// credentials resolves the account email and reads the master password.
// The password comes from VAULTSHARE_PASSWORD when set (scripting), and a
// hidden terminal prompt otherwise.
func (a *App) credentials() (email, password string, err error) {
	email = strings.TrimSpace(a.email)
	if email == "" {
		return "", "", errNoEmail
	}

	if password = os.Getenv("VAULTSHARE_PASSWORD"); password != "" {
		return email, password, nil
	}

	password, err = a.readPassword("Master password: ")
	if err != nil {
		return "", "", err
	}

	return email, password, nil
}

// readPassword reads a line without echoing it. Falls back to a plain read
// when stdin is not a terminal (e.g. piped input in tests).
func (a *App) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
