package ui

import tea "github.com/charmbracelet/bubbletea"

// handleKeyPress routes a key to the active phase after the global
// bindings. Returns whether the key was consumed.
func (m *AppModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		return true, tea.Quit
	}

	switch m.phase {
	case PhaseSetup:
		if handled, cmd := m.setup.handleKey(msg, m); handled {
			return true, cmd
		}
		switch msg.String() {
		case "q", "esc":
			m.shutdown()
			return true, tea.Quit
		}

	case PhaseActive:
		if handled, cmd := m.active.handleKey(msg); handled {
			return true, cmd
		}
		switch msg.String() {
		case "q":
			m.shutdown()
			return true, tea.Quit
		case "esc":
			m.leaveSession()
			return true, nil
		}
	}

	return false, nil
}
