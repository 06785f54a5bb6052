package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

func TestMessage_EncodeDecode(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgJoinGame, JoinGamePayload{GameID: "game_42"})

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinGame, decoded.Type)

	var payload JoinGamePayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &payload))
	assert.Equal(t, "game_42", payload.GameID)
}

func TestMessage_NoPayload(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgLeaveGame, nil)
	data, err := msg.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"leave_game"}`, string(data))
}

func TestDecode_GameUpdate(t *testing.T) {
	t.Parallel()

	wire := `{
		"type": "game_update",
		"payload": {
			"game_id": "game_7",
			"state": {"turn": 4, "phase": "rail", "players": [{"id": 0, "name": "Ada"}]},
			"last_action": {"success": true, "action": "Built link"},
			"ai_reasoning": "Expanding the rail network secures income."
		}
	}`

	msg, err := Decode([]byte(wire))
	require.NoError(t, err)
	require.Equal(t, MsgGameUpdate, msg.Type)

	var payload GameUpdatePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "game_7", payload.GameID)
	require.NotNil(t, payload.State)
	assert.Equal(t, 4, payload.State.Turn)
	assert.Equal(t, "rail", payload.State.Phase)
	require.Len(t, payload.State.Players, 1)
	assert.Equal(t, state.Player{ID: 0, Name: "Ada"}, payload.State.Players[0])
	require.NotNil(t, payload.LastAction)
	assert.True(t, payload.LastAction.Success)
	assert.Equal(t, "Expanding the rail network secures income.", payload.AIReasoning)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}
