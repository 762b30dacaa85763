package cli

import (
	"fmt"

	"golang.org/x/term"
)

// Seams for tests. term talks to the real tty, which scripted test input
// cannot provide.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// promptPassword reads a password with echo disabled. Only usable when stdin
// is a terminal.
func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	b, err := readPassword(0)
	a.println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// credentials extracts username and password from a command line of the form
// `cmd <username> <password>`. With the password omitted and an interactive
// terminal it prompts without echo instead.
func (a *App) credentials(tokens []string) (username, password string, ok bool) {
	switch {
	case len(tokens) == 3:
		return tokens[1], tokens[2], true
	case len(tokens) == 2 && a.interactive:
		pw, err := a.promptPassword()
		if err != nil {
			return "", "", false
		}
		return tokens[1], pw, true
	default:
		return "", "", false
	}
}
