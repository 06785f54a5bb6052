// Package protocol defines the websocket message envelope and payloads
// exchanged with the game server.
package protocol

import "encoding/json"

// Message is the wire envelope. The payload shape depends on Type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies a websocket message.
type MessageType string

// Client → server message types.
const (
	MsgJoinGame  MessageType = "join_game"
	MsgLeaveGame MessageType = "leave_game"
)

// Server → client message types.
const (
	MsgGameUpdate MessageType = "game_update" // full snapshot push
	MsgVRUpdate   MessageType = "vr_update"   // immersive world change summary
	MsgJoined     MessageType = "joined"      // join acknowledgement
	MsgLeft       MessageType = "left"        // leave acknowledgement
	MsgError      MessageType = "error"
)

// NewMessage creates a message, marshaling the payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage creates a message and panics on marshal failure. Only for
// payload types known to marshal.
func MustNewMessage(msgType MessageType, payload interface{}) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode serializes the message for the wire.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a wire message.
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
