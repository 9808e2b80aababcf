// Package util provides small string helpers shared across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to maxWidth visual columns, appending "..." when it had
// to cut. ANSI escape codes and wide characters are measured correctly, so
// styled terminal output survives intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail toward the final width
	return ansi.Truncate(s, maxWidth, "...")
}

// LastLines returns the trailing n lines of s. It returns s unchanged when it
// has n lines or fewer, and "" when n <= 0.
func LastLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
