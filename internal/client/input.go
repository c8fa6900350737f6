// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader reads a password without echo.
type PasswordReader func() ([]byte, error)

// TerminalPasswordReader reads from the controlling terminal on stdin.
func TerminalPasswordReader() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// readLine prints prompt to w and returns the next trimmed line. A final
// line without a newline is accepted.
func readLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readSecret(read PasswordReader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	secret, err := read()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(prompt), err)
	}
	return string(secret), nil
}
