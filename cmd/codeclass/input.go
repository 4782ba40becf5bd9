package main

import (
	"fmt"
	"io"
	"os"
)

// readInput returns the contents of the single file argument, or stdin when
// there is none or it is "-".
func readInput(args []string, stdin io.Reader) (name, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return args[0], string(b), nil
}
