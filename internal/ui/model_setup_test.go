package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiraSamrose/intelligent-board-games/internal/config"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSetupModel_DefaultsToFirstGame(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	gt := m.SelectedGameType()
	assert.Equal(t, state.AllGameTypes[0], gt)
	assert.Len(t, m.seats, gt.PlayerCount())
	assert.False(t, m.seats[0].isAI, "seat 1 defaults to human")
	assert.True(t, m.seats[1].isAI)
}

func TestSetupModel_CyclingGameRebuildsSeats(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	app := &AppModel{setup: m}

	handled, _ := m.handleKey(key("right"), app)
	require.True(t, handled)

	gt := m.SelectedGameType()
	assert.Equal(t, state.AllGameTypes[1], gt)
	assert.Len(t, m.seats, gt.PlayerCount())

	// Wrap backwards past the start of the list.
	m.handleKey(key("left"), app)
	m.handleKey(key("left"), app)
	assert.Equal(t, state.AllGameTypes[len(state.AllGameTypes)-1], m.SelectedGameType())
}

func TestSetupModel_ToggleSeatAndImmersive(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	app := &AppModel{setup: m}

	m.handleKey(key("down"), app) // seat 1
	m.handleKey(key(" "), app)
	assert.True(t, m.seats[0].isAI, "space flips the seat kind")
	m.handleKey(key(" "), app)
	assert.False(t, m.seats[0].isAI)

	m.cursor = m.immersiveRow()
	m.handleKey(key(" "), app)
	assert.True(t, m.Immersive())
}

func TestSetupModel_RenameSeat(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	app := &AppModel{setup: m}

	m.handleKey(key("down"), app)
	m.handleKey(key("e"), app)
	require.True(t, m.editing)

	m.input.SetValue("Marta")
	m.handleKey(key("enter"), app)

	assert.False(t, m.editing)
	assert.Equal(t, "Marta", m.seats[0].name)
	assert.Equal(t, "Marta", m.Roster()[0].Name)
}

func TestSetupModel_RosterMirrorsForm(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	gt := m.SelectedGameType()
	roster := m.Roster()

	require.Len(t, roster, gt.PlayerCount())
	opts := gt.CharacterOptions()
	for i, seat := range roster {
		assert.NotEmpty(t, seat.Name)
		assert.Equal(t, opts[m.seats[i].charIdx%len(opts)].Value, seat.Character)
		assert.Equal(t, m.seats[i].isAI, seat.IsAI)
	}
}

func TestAppModel_SetupViewRenders(t *testing.T) {
	t.Parallel()

	m := NewAppModel(config.Default())
	view := m.View()
	assert.Contains(t, view, "Intelligent Board Games")
	assert.Contains(t, view, "Seat 1")
	assert.Contains(t, view, "Start Session")
}

func TestSetupModel_CharacterCycleOnSeat(t *testing.T) {
	t.Parallel()

	m := NewSetupModel()
	app := &AppModel{setup: m}

	m.handleKey(key("down"), app)
	before := m.seats[0].charIdx
	m.handleKey(key("right"), app)
	opts := m.SelectedGameType().CharacterOptions()
	assert.Equal(t, (before+1)%len(opts), m.seats[0].charIdx)
}
