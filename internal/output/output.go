// Package output provides styled terminal output for the mason CLI.
//
// All user-facing messages go through these helpers so the tool has a
// consistent voice. Functions use lipgloss for styling but abstract away
// the details from callers.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// Writer is where all output goes. Overridable for tests.
	Writer io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// Called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message with 🧱 emoji and green color.
//
// Example:
//
//	output.Success("Created feature module: Login")
func Success(msg string) {
	fmt.Fprintln(Writer, successStyle.Render("🧱 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(Writer, errorStyle.Render("❌ "+msg))
}

// Warn prints a non-fatal warning with ⚠️ emoji and yellow color.
// Used for skip-if-exists and already-linked conditions, which never
// change the exit status.
func Warn(msg string) {
	fmt.Fprintln(Writer, warnStyle.Render("⚠️  "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Fprintln(Writer, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("bazel run //Features/Login:LoginDevApp")
func Step(msg string) {
	fmt.Fprintln(Writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(Writer, stepStyle.Render("🔍 "+msg))
	}
}
