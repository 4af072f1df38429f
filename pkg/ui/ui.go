// Package ui renders demo output to the terminal. Styling is cosmetic; every
// helper degrades to plain text when the writer is not a terminal because
// lipgloss handles profile detection itself.
package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerWidth    = 60
	previewMaxLen  = 50
	treeBranch     = "├── "
	treeLastBranch = "└── "
)

var (
	headerRuleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	authorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Console writes styled demo output to a single destination.
type Console struct {
	w     io.Writer
	quiet bool
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Quiet suppresses informational output; errors and answers still print.
func (c *Console) Quiet(on bool) { c.quiet = on }

// Header prints a 60-column banner with a centered title.
func (c *Console) Header(title string) {
	if c.quiet {
		return
	}
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, headerRuleStyle.Render(rule))
	fmt.Fprintln(c.w, headerTitleStyle.Render(centerText(title, headerWidth)))
	fmt.Fprintln(c.w, headerRuleStyle.Render(rule))
	fmt.Fprintln(c.w)
}

// Successf prints a green checkmarked line.
func (c *Console) Successf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red error line. Never suppressed.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Infof prints a plain informational line.
func (c *Console) Infof(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Dimf prints a faint line for secondary detail such as tool calls.
func (c *Console) Dimf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.w, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// AgentSays prints an agent-authored text block with an author label.
func (c *Console) AgentSays(author, text string) {
	fmt.Fprintf(c.w, "\n%s\n%s\n", authorStyle.Render("["+author+"]"), text)
}

// FileTree renders the virtual workspace as a tree with content previews.
func (c *Console) FileTree(files map[string]string) {
	if len(files) == 0 {
		fmt.Fprintln(c.w, dimStyle.Render("(workspace empty)"))
		return
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(c.w, "Virtual File System")
	for i, name := range names {
		branch := treeBranch
		if i == len(names)-1 {
			branch = treeLastBranch
		}
		fmt.Fprintf(c.w, "%s%s %s\n", branch, name, dimStyle.Render(Preview(files[name])))
	}
}

// Preview returns the first line of content truncated for tree display.
func Preview(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	runes := []rune(content)
	if len(runes) > previewMaxLen {
		return string(runes[:previewMaxLen]) + "..."
	}
	return content
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
