package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamiraSamrose/intelligent-board-games/internal/board"
	"github.com/SamiraSamrose/intelligent-board-games/internal/session"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

const (
	logPanelLines = 8
	seatPulseSpan = 600 * time.Millisecond
)

// ActiveModel is the live session screen: the rendered board, the seat
// roster, the action picker with its confirm step, the decision commentary
// panel, and the activity log.
type ActiveModel struct {
	app *AppModel

	actions    []state.Action
	cursor     int
	confirming bool

	// pulse scales the current-seat marker while a turn lands.
	pulse float64
}

func NewActiveModel(app *AppModel) *ActiveModel {
	return &ActiveModel{app: app, pulse: 1}
}

func (m *ActiveModel) onSessionStart() {
	m.reset()
	m.pulseCurrentSeat()
}

func (m *ActiveModel) reset() {
	m.actions = nil
	m.cursor = 0
	m.confirming = false
	m.pulse = 1
}

func (m *ActiveModel) setActions(actions []state.Action) {
	m.actions = actions
	if m.cursor >= len(actions) {
		m.cursor = 0
	}
	m.confirming = false
}

// humanSeat returns the first human seat in the roster.
func (m *ActiveModel) humanSeat() int {
	sess := m.app.controller.Session()
	if sess == nil {
		return 0
	}
	for i, seat := range sess.Roster {
		if !seat.IsAI {
			return i
		}
	}
	return 0
}

// loadActions refreshes the human seat's available actions.
func (m *ActiveModel) loadActions() tea.Cmd {
	app := m.app
	seat := m.humanSeat()
	return func() tea.Msg {
		actions, err := app.controller.Actions(app.runCtx, seat)
		if err != nil {
			return SessionErrorMsg{Err: err}
		}
		return ActionsLoadedMsg{Actions: actions}
	}
}

// submitAction executes the confirmed action and plays out any automated
// seats that follow it.
func (m *ActiveModel) submitAction(action state.Action) tea.Cmd {
	app := m.app
	seat := m.humanSeat()
	app.busy = true
	return tea.Batch(app.spinner.Tick, func() tea.Msg {
		return ActionResultMsg{Err: app.controller.ExecuteAction(app.runCtx, seat, action)}
	})
}

// pulseCurrentSeat runs one marker pulse through the shared scheduler.
func (m *ActiveModel) pulseCurrentSeat() {
	m.app.scheduler.Pulse(seatPulseSpan,
		func(scale float64) { m.pulse = scale },
		func() { m.pulse = 1 },
	)
}

func (m *ActiveModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y", "enter":
			m.confirming = false
			if m.cursor < len(m.actions) {
				return true, m.submitAction(m.actions[m.cursor])
			}
			return true, nil
		case "n", "esc":
			m.confirming = false
			return true, nil
		}
		return true, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil

	case "down", "j":
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
		return true, nil

	case "enter":
		if len(m.actions) > 0 {
			m.confirming = true
		}
		return true, nil

	case "r":
		return true, m.loadActions()

	case "x":
		m.app.leaveSession()
		return true, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.actions) {
			m.cursor = idx
			m.confirming = true
		}
		return true, nil
	}

	return false, nil
}

func (m *ActiveModel) update(msg tea.Msg) tea.Cmd {
	return nil
}

func (m *ActiveModel) view() string {
	sess := m.app.controller.Session()
	snap := m.app.controller.Snapshot()
	if sess == nil {
		return dimStyle.Render("no active session")
	}

	frame := m.app.renderer.Render(sess.Type, snap)
	left := boxStyle.Render(frame)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.rosterView(sess, snap),
		m.actionView(),
		m.reasoningView(),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("\n")
	sb.WriteString(m.logView())
	if m.app.err != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.app.err))
	}
	sb.WriteString("\n")
	help := "↑/↓ or 1-9 select · enter play · r refresh · x leave · q quit"
	if m.confirming {
		help = "y/enter confirm · n/esc cancel"
	}
	sb.WriteString(dimStyle.Render(help))
	return sb.String()
}

func (m *ActiveModel) rosterView(sess *state.Session, snap *state.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Players"))
	sb.WriteString("\n")

	if snap == nil {
		sb.WriteString(dimStyle.Render("waiting for state..."))
		return sb.String()
	}

	current := -1
	if snap.CurrentPlayer != nil {
		current = snap.CurrentPlayer.ID
	}

	for _, player := range snap.Players {
		nameStyle := lipgloss.NewStyle().Foreground(board.PlayerColor(player.ID))
		marker := "  "
		if player.ID == current {
			marker = "▶ "
			if m.pulse > 1.1 {
				nameStyle = nameStyle.Bold(true)
			}
		}
		tag := ""
		if sess.IsAutomated(player.ID) {
			tag = dimStyle.Render(" (AI)")
		}
		sb.WriteString(marker + nameStyle.Render(player.Name) + tag)
		sb.WriteString("\n")

		stats := board.PlayerStats(sess.Type, player)
		if len(stats) > 0 {
			parts := make([]string, len(stats))
			for i, stat := range stats {
				parts[i] = fmt.Sprintf("%s %s", stat.Label, stat.Value)
			}
			sb.WriteString(dimStyle.Render("    " + strings.Join(parts, " · ")))
			sb.WriteString("\n")
		}
	}

	if snap.GameOver {
		sb.WriteString("\n")
		sb.WriteString(selectedStyle.Render("GAME OVER"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *ActiveModel) actionView() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Actions"))
	sb.WriteString("\n")

	if len(m.actions) == 0 {
		sb.WriteString(dimStyle.Render("none available"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, action := range m.actions {
		line := fmt.Sprintf("%d. %s", i+1, action.Label())
		if action.Description != "" {
			line += dimStyle.Render(" — " + action.Description)
		}
		if i == m.cursor {
			prefix := "> "
			if m.confirming {
				prefix = "? "
				line += selectedStyle.Render("  confirm?")
			}
			sb.WriteString(selectedStyle.Render(prefix) + line)
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *ActiveModel) reasoningView() string {
	reasoning := m.app.controller.LatestReasoning()
	if reasoning == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("AI Commentary"))
	sb.WriteString("\n")
	if reasoning.PlayerName != "" {
		sb.WriteString(dimStyle.Render(reasoning.PlayerName))
		sb.WriteString("\n")
	}
	if reasoning.Text != "" {
		sb.WriteString(reasoning.Text)
		sb.WriteString("\n")
	}
	if reasoning.InCharacterQuote != "" {
		sb.WriteString(quoteStyle.Render("“" + reasoning.InCharacterQuote + "”"))
		sb.WriteString("\n")
	}
	if reasoning.SocietyText != "" {
		sb.WriteString(dimStyle.Render(reasoning.SocietyText))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *ActiveModel) logView() string {
	entries := m.app.controller.Log().Entries()
	if len(entries) > logPanelLines {
		entries = entries[:logPanelLines]
	}

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Activity"))
	sb.WriteString("\n")
	for _, entry := range entries {
		style := logEventStyle
		switch entry.Kind {
		case session.EntryPlayerAction:
			style = logActionStyle
		case session.EntryAIAction:
			style = logAIStyle
		case session.EntryError:
			style = logErrorStyle
		}
		sb.WriteString(dimStyle.Render(entry.At.Format("15:04:05") + " "))
		sb.WriteString(style.Render(entry.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}
