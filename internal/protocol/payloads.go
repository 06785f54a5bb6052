package protocol

import (
	"encoding/json"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// JoinGamePayload subscribes the connection to a session's update room.
type JoinGamePayload struct {
	GameID string `json:"game_id"`
}

// LeaveGamePayload unsubscribes from a session's update room.
type LeaveGamePayload struct {
	GameID string `json:"game_id"`
}

// AckPayload acknowledges a join or leave.
type AckPayload struct {
	GameID string `json:"game_id"`
}

// GameUpdatePayload is the server-pushed full-state update.
type GameUpdatePayload struct {
	GameID     string          `json:"game_id"`
	State      *state.Snapshot `json:"state"`
	LastAction *LastAction     `json:"last_action,omitempty"`

	// Commentary attached when the update came from an automated turn.
	AIReasoning      string `json:"ai_reasoning,omitempty"`
	CharacterQuote   string `json:"character_quote,omitempty"`
	Dialogue         string `json:"dialogue,omitempty"`
	SocietyReasoning string `json:"society_reasoning,omitempty"`
}

// LastAction summarizes the action that produced an update.
type LastAction struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VRUpdatePayload is the server-pushed immersive world change summary.
type VRUpdatePayload struct {
	GameID  string          `json:"game_id"`
	Changes json.RawMessage `json:"changes,omitempty"`
}

// ErrorPayload carries a server-side error.
type ErrorPayload struct {
	Message string `json:"message"`
}
