package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ConflictResolution represents what to do with an existing file.
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

// Resolver decides what happens when a generated file already exists.
type Resolver struct {
	strategy ConflictStrategy
}

// ConflictStrategy determines how to resolve conflicts.
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// NewResolver creates a conflict resolver from CLI flags.
//
// The default strategy is Skip: existing files are never overwritten, which
// keeps re-running a scaffold safe and preserves hand-edits. --force
// overwrites unconditionally; --diff shows the diff and asks.
func NewResolver(force, diff bool) *Resolver {
	return &Resolver{strategy: selectStrategy(force, diff)}
}

// ResolveConflict determines what to do with a file that already exists.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	return r.strategy.Resolve(path, existing, newer)
}

func selectStrategy(force, diff bool) ConflictStrategy {
	switch {
	case force:
		return &ForceStrategy{}
	case diff && term.IsTerminal(int(os.Stdout.Fd())):
		return &DiffStrategy{}
	default:
		return &SkipStrategy{}
	}
}

// ForceStrategy always returns Overwrite (no prompts).
type ForceStrategy struct{}

func (s *ForceStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always returns Skip (no prompts).
type SkipStrategy struct{}

func (s *SkipStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy shows a diff then asks the user to decide.
type DiffStrategy struct{}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	diff := RenderDiff(path, existing, newer)

	if strings.Count(diff, "\n") > 20 {
		model := newDiffViewerModel(path, diff)
		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show diff: %w", err)
		}
		if finalModel.(diffViewerModel).cancelled {
			return Cancel, nil
		}
	} else {
		fmt.Println(diff)
	}

	interactive := &InteractiveStrategy{}
	return interactive.Resolve(path, existing, newer)
}

// InteractiveStrategy shows a menu with keyboard navigation.
type InteractiveStrategy struct{}

// Resolve shows the menu and returns the user's choice. Selecting
// "Show diff and decide" re-displays the diff and then the menu again.
func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	model := newConflictMenuModel(path)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to show menu: %w", err)
	}

	result := finalModel.(conflictMenuModel)
	if result.selected == nil {
		return Cancel, nil
	}
	if *result.selected == ShowDiff {
		diffStrategy := &DiffStrategy{}
		return diffStrategy.Resolve(path, existing, newer)
	}
	return *result.selected, nil
}

// conflictMenuModel is the BubbleTea model for the conflict menu.
type conflictMenuModel struct {
	path     string
	choices  []string
	cursor   int
	selected *ConflictResolution
}

func newConflictMenuModel(path string) conflictMenuModel {
	return conflictMenuModel{
		path: path,
		choices: []string{
			"Show diff and decide",
			"Skip (keep existing file)",
			"Overwrite (replace with generated file)",
			"Cancel operation",
		},
	}
}

func (m conflictMenuModel) Init() tea.Cmd {
	return nil
}

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			resolution := mapChoiceToResolution(m.cursor)
			m.selected = &resolution
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m conflictMenuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File conflict detected: ") + titleStyle.Render(m.path) + "\n\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}

	return b.String()
}

func mapChoiceToResolution(cursor int) ConflictResolution {
	switch cursor {
	case 0:
		return ShowDiff
	case 1:
		return Skip
	case 2:
		return Overwrite
	default:
		return Cancel
	}
}

// diffViewerModel is the BubbleTea model for full-screen diff display.
type diffViewerModel struct {
	path      string
	diff      string
	viewport  viewport.Model
	ready     bool
	cancelled bool
}

func newDiffViewerModel(path, diff string) diffViewerModel {
	return diffViewerModel{path: path, diff: diff}
}

func (m diffViewerModel) Init() tea.Cmd {
	return nil
}

func (m diffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "up", "k":
			m.viewport.LineUp(1)
		case "down", "j":
			m.viewport.LineDown(1)
		case "pgup", "b":
			m.viewport.ViewUp()
		case "pgdown", "f", "space":
			m.viewport.ViewDown()
		}

	case tea.WindowSizeMsg:
		verticalMargin := 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-verticalMargin)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - verticalMargin
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Diff: "+m.path) + "\n\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(mutedStyle.Render(" [↑/↓] Scroll    [q] Keep existing file") + "\n")
	return b.String()
}
