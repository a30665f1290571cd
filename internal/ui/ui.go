// Package ui renders user-facing console output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hbjs97/goto/internal/config"
)

var (
	errorLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	arrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// Error writes "error: <err>" to w.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorLabel.Render("error:"), err)
}

// ProjectList renders projects one per line, names padded to a common width.
func ProjectList(projects []config.Project) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("projects:"))
	b.WriteString("\n")

	width := 0
	for _, p := range projects {
		if w := lipgloss.Width(p.Name); w > width {
			width = w
		}
	}

	arrow := arrowStyle.Render("->")
	for _, p := range projects {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Name))
		fmt.Fprintf(&b, "    %s@%s  %s  %s\n", nameStyle.Render(p.Name), pad, arrow, pathStyle.Render(p.Path))
	}
	return b.String()
}
