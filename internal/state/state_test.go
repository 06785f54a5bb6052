package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameType(t *testing.T) {
	t.Parallel()

	for _, gt := range AllGameTypes {
		parsed, err := ParseGameType(string(gt))
		require.NoError(t, err)
		assert.Equal(t, gt, parsed)
		assert.True(t, gt.Valid())
	}

	_, err := ParseGameType("monopoly")
	assert.Error(t, err)
	assert.False(t, GameType("monopoly").Valid())
}

func TestGameType_PlayerCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gt    GameType
		count int
	}{
		{GameBrassBirmingham, 4},
		{GameGloomhaven, 4},
		{GameTerraformingMars, 5},
		{GameExplodingKittens, 5},
		{GameDune, 6},
		{GameDungeonsDragons, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.count, tt.gt.PlayerCount(), string(tt.gt))
		assert.NotEmpty(t, tt.gt.CharacterOptions())
	}
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	t.Parallel()

	occ := 2
	snap := &Snapshot{
		GameID:        "game_1",
		Seq:           7,
		Turn:          3,
		Phase:         "canal",
		CurrentPlayer: &PlayerRef{ID: 1, Name: "Ada"},
		Players: []Player{
			{ID: 0, Name: "Ada", Money: 17, Income: 3},
			{ID: 1, Name: "Brunel", Money: 12},
		},
		Board: &Board{
			Cities: map[string]City{
				"birmingham": {Type: "city", Connections: []string{"coventry"}},
			},
			Grid: [][]GridCell{{{Terrain: "wall"}, {Terrain: "door", Occupant: &occ}}},
		},
	}

	clone := snap.Clone()
	require.NotNil(t, clone)
	assert.True(t, snap.Equal(clone))

	// Mutating the clone must not leak into the original.
	clone.Players[0].Money = 99
	clone.Board.Cities["birmingham"] = City{Type: "stronghold"}
	*clone.Board.Grid[0][1].Occupant = 5

	assert.Equal(t, 17, snap.Players[0].Money)
	assert.Equal(t, "city", snap.Board.Cities["birmingham"].Type)
	assert.Equal(t, 2, *snap.Board.Grid[0][1].Occupant)
	assert.False(t, snap.Equal(clone))
}

func TestAction_EchoesRawPayload(t *testing.T) {
	t.Parallel()

	// Server actions carry fields this client does not model; they must
	// survive the round trip untouched.
	raw := `{"id":"build_coal_birmingham","type":"build","industry":"coal","location":"birmingham","level":1,"cost":5,"description":"Build level 1 coal in birmingham for £5"}`

	var a Action
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "build", a.Type)
	assert.Equal(t, 5, a.Cost)
	assert.Equal(t, "build", a.Label())

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestSession_IsAutomated(t *testing.T) {
	t.Parallel()

	sess := &Session{
		ID:     "game_a",
		Type:   GameExplodingKittens,
		Roster: DefaultRoster(GameExplodingKittens),
	}

	assert.False(t, sess.IsAutomated(0), "seat 0 defaults to human")
	for i := 1; i < len(sess.Roster); i++ {
		assert.True(t, sess.IsAutomated(i))
	}
	assert.False(t, sess.IsAutomated(-1))
	assert.False(t, sess.IsAutomated(len(sess.Roster)), "out of range halts the loop")
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1250, "1.2K"},
		{1000000, "1.0M"},
		{3400000, "3.4M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}
