package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// seatConfig is one editable seat row of the setup form.
type seatConfig struct {
	name    string
	charIdx int
	isAI    bool
}

// SetupModel is the session configuration form: game picker, one row per
// seat, the immersive toggle, and the start button.
type SetupModel struct {
	gameTypeIdx int
	seats       []seatConfig
	immersive   bool

	// cursor rows: 0 game picker, 1..len(seats) seats, then immersive,
	// then start.
	cursor  int
	editing bool
	input   textinput.Model
}

func NewSetupModel() *SetupModel {
	ti := textinput.New()
	ti.Placeholder = "player name..."
	ti.CharLimit = 24
	ti.Width = 24

	m := &SetupModel{input: ti}
	m.rebuildSeats()
	return m
}

// rebuildSeats resets the seat rows to the selected game's defaults.
func (m *SetupModel) rebuildSeats() {
	gt := m.SelectedGameType()
	roster := state.DefaultRoster(gt)
	opts := gt.CharacterOptions()

	m.seats = make([]seatConfig, len(roster))
	for i, seat := range roster {
		charIdx := 0
		for j, opt := range opts {
			if opt.Value == seat.Character {
				charIdx = j
				break
			}
		}
		m.seats[i] = seatConfig{name: seat.Name, charIdx: charIdx, isAI: seat.IsAI}
	}
	if m.cursor > m.startRow() {
		m.cursor = m.startRow()
	}
}

func (m *SetupModel) SelectedGameType() state.GameType {
	return state.AllGameTypes[m.gameTypeIdx]
}

// Roster builds the seat configuration to submit.
func (m *SetupModel) Roster() []state.PlayerConfig {
	opts := m.SelectedGameType().CharacterOptions()
	roster := make([]state.PlayerConfig, len(m.seats))
	for i, seat := range m.seats {
		opt := opts[seat.charIdx%len(opts)]
		roster[i] = state.PlayerConfig{
			Name:      seat.name,
			Character: opt.Value,
			IsAI:      seat.isAI,
			Class:     opt.Value,
		}
	}
	return roster
}

func (m *SetupModel) Immersive() bool {
	return m.immersive
}

func (m *SetupModel) immersiveRow() int { return len(m.seats) + 1 }

func (m *SetupModel) startRow() int { return len(m.seats) + 2 }

// handleKey processes one setup key. Returns the follow-up command and
// whether the key was consumed.
func (m *SetupModel) handleKey(msg tea.KeyMsg, app *AppModel) (bool, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" && m.cursor >= 1 && m.cursor <= len(m.seats) {
				m.seats[m.cursor-1].name = name
			}
			m.editing = false
			m.input.Blur()
			return true, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			return true, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return true, cmd
		}
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil

	case "down", "j":
		if m.cursor < m.startRow() {
			m.cursor++
		}
		return true, nil

	case "left", "h":
		m.cycle(-1)
		return true, nil

	case "right", "l":
		m.cycle(1)
		return true, nil

	case " ":
		switch {
		case m.cursor >= 1 && m.cursor <= len(m.seats):
			m.seats[m.cursor-1].isAI = !m.seats[m.cursor-1].isAI
		case m.cursor == m.immersiveRow():
			m.immersive = !m.immersive
		}
		return true, nil

	case "e":
		if m.cursor >= 1 && m.cursor <= len(m.seats) {
			m.editing = true
			m.input.SetValue(m.seats[m.cursor-1].name)
			m.input.Focus()
			return true, textinput.Blink
		}
		return true, nil

	case "enter":
		if m.cursor == m.startRow() {
			return true, app.createSession()
		}
		return true, nil
	}

	return false, nil
}

// cycle adjusts the value under the cursor left or right.
func (m *SetupModel) cycle(delta int) {
	switch {
	case m.cursor == 0:
		n := len(state.AllGameTypes)
		m.gameTypeIdx = (m.gameTypeIdx + delta + n) % n
		m.rebuildSeats()
	case m.cursor >= 1 && m.cursor <= len(m.seats):
		opts := m.SelectedGameType().CharacterOptions()
		seat := &m.seats[m.cursor-1]
		seat.charIdx = (seat.charIdx + delta + len(opts)) % len(opts)
	}
}

func (m *SetupModel) update(msg tea.Msg) tea.Cmd {
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *SetupModel) view(errText string) string {
	var sb strings.Builder

	sb.WriteString(titleStyle("⬢ Intelligent Board Games"))
	sb.WriteString("\n\n")

	gt := m.SelectedGameType()
	row := fmt.Sprintf("Game:  ◀ %s ▶   (%d players)", gt.Title(), gt.PlayerCount())
	sb.WriteString(m.renderRow(0, row))
	sb.WriteString("\n\n")

	opts := gt.CharacterOptions()
	for i, seat := range m.seats {
		kind := "Human"
		if seat.isAI {
			kind = "AI"
		}
		name := seat.name
		if m.editing && m.cursor == i+1 {
			name = m.input.View()
		}
		row := fmt.Sprintf("Seat %d: %-24s [%-5s] %s", i+1, name, kind, opts[seat.charIdx%len(opts)].Label)
		sb.WriteString(m.renderRow(i+1, row))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	check := "[ ]"
	if m.immersive {
		check = "[x]"
	}
	sb.WriteString(m.renderRow(m.immersiveRow(), check+" Immersive world"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderRow(m.startRow(), "▶ Start Session"))
	sb.WriteString("\n")

	if errText != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(errText))
		sb.WriteString("\n")
	}

	help := "↑/↓ move · ←/→ change · space toggle · e rename · enter start · q quit"
	sb.WriteString(promptStyle.Render(dimStyle.Render(help)))

	return sb.String()
}

func (m *SetupModel) renderRow(row int, text string) string {
	if row == m.cursor {
		return selectedStyle.Render("> " + text)
	}
	return lipgloss.NewStyle().Render("  " + text)
}
