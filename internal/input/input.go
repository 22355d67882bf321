// Package input provides interactive terminal input utilities.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Reader is the input source. Overridable for tests.
	Reader io.Reader = os.Stdin
)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name := input.Prompt("Module name", "")
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(Reader)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true.
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(Reader)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}
	return line == "y" || line == "yes"
}
