package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"arkive-client/internal/model"
)

// ErrNoInput is returned when input ends before a valid username was entered.
var ErrNoInput = errors.New("cli: input closed")

// PromptUsername asks for a username until one passes model.NormalizeUsername.
func PromptUsername(in *bufio.Scanner, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Username: ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", ErrNoInput
		}
		name, err := model.NormalizeUsername(in.Text())
		if err == nil {
			return name, nil
		}
		switch {
		case errors.Is(err, model.ErrUsernameTooShort):
			warn.Fprintf(out, "Username must be at least %d characters.\n", model.MinUsernameLength)
		default:
			warn.Fprintln(out, "Please enter a username.")
		}
	}
}
