package generator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderDiff produces a colored line diff between the existing file content
// and the newly generated content.
func RenderDiff(path string, existing, newer []byte) string {
	dmp := diffmatchpatch.New()

	// Line-level diff: map lines to runes, diff, then map back.
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(string(existing), string(newer))
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var b strings.Builder
	b.WriteString(contextStyle.Render("--- "+path+" (existing)") + "\n")
	b.WriteString(contextStyle.Render("+++ "+path+" (generated)") + "\n")

	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				b.WriteString(addedStyle.Render("+ "+line) + "\n")
			case diffmatchpatch.DiffDelete:
				b.WriteString(removedStyle.Render("- "+line) + "\n")
			case diffmatchpatch.DiffEqual:
				b.WriteString(contextStyle.Render("  "+line) + "\n")
			}
		}
	}

	return b.String()
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
