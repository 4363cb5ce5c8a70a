package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PassphraseEnvVar supplies the key passphrase non-interactively.
const PassphraseEnvVar = "TOKENLOCKER_PASSPHRASE"

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func stdinIsTerminal() bool  { return term.IsTerminal(int(os.Stdin.Fd())) }
func stdoutIsTerminal() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

var errPassphraseMismatch = errors.New("passphrases do not match")

func (a *App) interactive() bool {
	return os.Getenv(PassphraseEnvVar) == "" && a.in == os.Stdin && stdinIsTerminal()
}

// newPassphrase asks for a passphrase for a new key, twice when a person
// is typing it.
func (a *App) newPassphrase() ([]byte, error) {
	pw, err := a.passphrase("New passphrase: ")
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errors.New("passphrase must not be empty")
	}
	if !a.interactive() {
		return pw, nil
	}
	again, err := a.passphrase("Confirm passphrase: ")
	if err != nil {
		return nil, err
	}
	if string(pw) != string(again) {
		return nil, errPassphraseMismatch
	}
	return pw, nil
}

// readPassphrase resolves the passphrase from the environment, the
// terminal (no echo) or one line of piped stdin, in that order.
func (a *App) readPassphrase(prompt string) ([]byte, error) {
	if pw := os.Getenv(PassphraseEnvVar); pw != "" {
		return []byte(pw), nil
	}

	if a.interactive() {
		fmt.Fprint(os.Stderr, prompt)
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		return pw, nil
	}

	if a.reader == nil {
		a.reader = bufio.NewReader(a.in)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
