package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a yes/no prompt and reads a single answer line.
// Empty input takes the default; unrecognized input asks again, up to
// three times before giving up with the default.
func Confirm(r io.Reader, w io.Writer, prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	reader := bufio.NewReader(r)
	for range 3 {
		fmt.Fprintf(w, "%s %s ", FormatPrompt(prompt), SubtleStyle.Render(hint))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return defaultYes
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
	return defaultYes
}
