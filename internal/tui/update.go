package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkreps/underlords/internal/errors"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-4)
		return m, nil

	case dataChangedMsg:
		m.handleDataChanged()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			cmd := m.submit()
			return m, cmd

		case "up":
			m.recallHistory(-1)
			return m, nil

		case "down":
			m.recallHistory(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends the outcome to the
// scrollback.
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return nil
	}

	m.history = append(m.history, line)
	m.histIdx = len(m.history)
	m.push(entryEcho, "> "+line)

	res := m.handler.Execute(line, m.state)
	if res.Err != nil {
		m.push(entryError, res.Err.Error())
		if logger := m.state.logger; logger != nil {
			// No-fit mutations are routine; keep them at debug.
			if errors.IsDomainError(res.Err) {
				logger.Debug("command failed", "input", line, "error", res.Err)
			} else {
				logger.Warn("command failed", "input", line, "error", res.Err)
			}
		}
		return nil
	}
	if res.Output != "" {
		m.push(entryOutput, res.Output)
	}
	if res.Quit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// recallHistory steps through previously submitted lines. Stepping past the
// newest one clears the input.
func (m *Model) recallHistory(step int) {
	if len(m.history) == 0 {
		return
	}
	m.histIdx += step
	if m.histIdx < 0 {
		m.histIdx = 0
	}
	if m.histIdx >= len(m.history) {
		m.histIdx = len(m.history)
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

// handleDataChanged reloads the universe after the data file changed on
// disk and reports the result in the scrollback.
func (m *Model) handleDataChanged() {
	logger := m.state.logger

	if err := m.state.ReloadData(); err != nil {
		m.push(entryError, fmt.Sprintf("Data file changed but reload failed: %v", err))
		if logger != nil {
			logger.Error("data reload failed", "file", m.state.dataFile, "error", err)
		}
		return
	}

	u := m.state.universe
	notice := fmt.Sprintf("Data file changed; reloaded %d heroes, %d alliances.",
		len(u.Heroes()), len(u.Alliances()))
	if m.state.team != nil {
		notice += " Run new to rebuild the team."
	}
	m.push(entryNotice, notice)

	if logger != nil {
		logger.Info("data reloaded", "file", m.state.dataFile,
			"heroes", len(u.Heroes()), "alliances", len(u.Alliances()))
	}
}
