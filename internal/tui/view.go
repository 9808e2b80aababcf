package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkreps/underlords/internal/tui/styles"
	"github.com/mkreps/underlords/internal/util"
)

// Layout constants
const (
	chromeHeight   = 9 // header block, intro, input, status and help lines
	minScrollLines = 3
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width - 2).Render("Underlord team picker"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Type help or ? to list commands."))
	b.WriteString("\n\n")

	if sb := m.renderScrollback(); sb != "" {
		b.WriteString(sb)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderScrollback styles every entry and clamps the result to the lines
// left between the header and the footer.
func (m Model) renderScrollback() string {
	if len(m.scrollback) == 0 {
		return ""
	}

	parts := make([]string, len(m.scrollback))
	for i, e := range m.scrollback {
		switch e.kind {
		case entryEcho:
			parts[i] = styles.Echo.Render(e.text)
		case entryError:
			parts[i] = styles.ErrorMsg.Render(e.text)
		case entryNotice:
			parts[i] = styles.SuccessMsg.Render(e.text)
		default:
			parts[i] = e.text
		}
	}

	lines := m.height - chromeHeight
	if lines < minScrollLines {
		lines = minScrollLines
	}
	return util.LastLines(strings.Join(parts, "\n"), lines)
}

// statusLine summarizes the working team on the left and names the data
// file on the right.
func (m Model) statusLine() string {
	var left string
	if g := m.state.team; g == nil {
		left = "no team (run new)"
	} else {
		al := g.Alliances()
		left = fmt.Sprintf("team %d/%d, %d claimed", al.Size(), g.Limit(), len(al.States()))
	}
	right := filepath.Base(m.state.dataFile)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.StatusBar.Render(util.Truncate(left, m.width-2))
	}
	return styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	keys := []string{
		styles.HelpKey.Render("enter") + " run",
		styles.HelpKey.Render("↑/↓") + " history",
		styles.HelpKey.Render("ctrl+c") + " quit",
	}
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}
