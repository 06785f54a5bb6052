package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiraSamrose/intelligent-board-games/internal/config"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

func TestActiveModel_ActionConfirmFlow(t *testing.T) {
	t.Parallel()

	app := NewAppModel(config.Default())
	m := app.active
	m.setActions([]state.Action{{Name: "Move"}, {Name: "Build"}})

	m.handleKey(key("down"))
	assert.Equal(t, 1, m.cursor)

	m.handleKey(key("enter"))
	assert.True(t, m.confirming, "enter arms the confirm step")

	m.handleKey(key("n"))
	assert.False(t, m.confirming, "n cancels without submitting")

	m.handleKey(key("enter"))
	handled, cmd := m.handleKey(key("y"))
	require.True(t, handled)
	assert.NotNil(t, cmd, "confirming yields the submit command")
	assert.False(t, m.confirming)
}

func TestActiveModel_CursorStaysInBounds(t *testing.T) {
	t.Parallel()

	app := NewAppModel(config.Default())
	m := app.active
	m.setActions([]state.Action{{Name: "Move"}})

	m.handleKey(key("up"))
	assert.Equal(t, 0, m.cursor)
	m.handleKey(key("down"))
	assert.Equal(t, 0, m.cursor, "single action pins the cursor")

	m.setActions(nil)
	m.handleKey(key("enter"))
	assert.False(t, m.confirming, "no actions means nothing to confirm")
}

func TestActiveModel_SetActionsResetsStaleCursor(t *testing.T) {
	t.Parallel()

	app := NewAppModel(config.Default())
	m := app.active
	m.setActions([]state.Action{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	m.cursor = 2

	m.setActions([]state.Action{{Name: "A"}})
	assert.Equal(t, 0, m.cursor)
}

func TestActiveModel_NumberKeySelectsAndArmsConfirm(t *testing.T) {
	t.Parallel()

	app := NewAppModel(config.Default())
	m := app.active
	m.setActions([]state.Action{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	m.handleKey(key("3"))
	assert.Equal(t, 2, m.cursor)
	assert.True(t, m.confirming)

	m.handleKey(key("esc"))
	m.handleKey(key("9"))
	assert.Equal(t, 2, m.cursor, "out-of-range number is ignored")
	assert.False(t, m.confirming)
}

func TestActiveModel_LeaveReturnsToSetup(t *testing.T) {
	t.Parallel()

	app := NewAppModel(config.Default())
	app.phase = PhaseActive

	handled, _ := app.active.handleKey(key("x"))
	require.True(t, handled)
	assert.Equal(t, PhaseSetup, app.phase)
}
