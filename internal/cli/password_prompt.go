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

// PasswordPrompt returns the new password. An empty result asks the caller to
// generate a temporary one.
type PasswordPrompt func() (string, error)

// TerminalPasswordPrompt reads the password twice without echo when stdin is a
// terminal and falls back to a single plain line otherwise.
func TerminalPasswordPrompt(stdin *os.File, out io.Writer) PasswordPrompt {
	return func() (string, error) {
		if stdin == nil {
			return "", errors.New("stdin unavailable")
		}

		fd := int(stdin.Fd())
		if !term.IsTerminal(fd) {
			line, err := bufio.NewReader(stdin).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			return strings.TrimSpace(line), nil
		}

		fmt.Fprint(out, "New password (leave empty to generate one): ")
		first, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		if len(first) == 0 {
			return "", nil
		}

		fmt.Fprint(out, "Repeat password: ")
		second, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}
}
