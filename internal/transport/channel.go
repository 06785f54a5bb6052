// Package transport provides the event channel: a named pub-sub wrapper over
// one persistent websocket connection to the game server.
package transport

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SamiraSamrose/intelligent-board-games/internal/logger"
	"github.com/SamiraSamrose/intelligent-board-games/internal/protocol"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Event names the channel's subscription topics.
type Event string

const (
	EventConnected    Event = "client_connected"
	EventDisconnected Event = "client_disconnected"
	EventGameUpdate   Event = "game_update"
	EventVRUpdate     Event = "vr_update"
	EventJoined       Event = "joined"
	EventLeft         Event = "left"
	EventError        Event = "error"
)

// Handler receives the raw payload of an event.
type Handler func(payload json.RawMessage)

type subscription struct {
	id int
	fn Handler
}

// Channel is the event channel. Handlers registered for an event are invoked
// in registration order from the read loop.
type Channel struct {
	serverURL string

	mu        sync.RWMutex
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	connected bool
	closed    bool
	gameID    string

	handlersMu sync.RWMutex
	handlers   map[Event][]subscription
	nextID     int
}

// NewChannel creates an event channel for the given websocket URL.
func NewChannel(serverURL string) *Channel {
	return &Channel{
		serverURL: serverURL,
		handlers:  make(map[Event][]subscription),
	}
}

// On registers a handler for an event and returns an unsubscribe function.
// Multiple handlers per event are invoked in registration order.
func (c *Channel) On(event Event, fn Handler) func() {
	c.handlersMu.Lock()
	c.nextID++
	id := c.nextID
	c.handlers[event] = append(c.handlers[event], subscription{id: id, fn: fn})
	c.handlersMu.Unlock()

	return func() {
		c.handlersMu.Lock()
		defer c.handlersMu.Unlock()
		subs := c.handlers[event]
		for i, s := range subs {
			if s.id == id {
				c.handlers[event] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

func (c *Channel) emit(event Event, payload json.RawMessage) {
	c.handlersMu.RLock()
	subs := make([]subscription, len(c.handlers[event]))
	copy(subs, c.handlers[event])
	c.handlersMu.RUnlock()

	for _, s := range subs {
		s.fn(payload)
	}
}

// Connect dials the server and starts the read/write pumps. On success the
// channel is marked connected and client_connected is emitted.
func (c *Channel) Connect() error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(c.serverURL, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.send = make(chan []byte, 256)
	c.done = make(chan struct{})
	c.connected = true
	c.closed = false
	c.mu.Unlock()

	go c.readPump()
	go c.writePump()

	c.emit(EventConnected, nil)
	return nil
}

// IsConnected reports whether the channel currently holds a live connection.
func (c *Channel) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// GameID returns the session id the channel has joined, if any.
func (c *Channel) GameID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gameID
}

// Join subscribes the connection to a session's update room. When not
// connected this is a no-op with a logged error.
func (c *Channel) Join(gameID string) {
	if !c.IsConnected() {
		logger.LogError("join %s: not connected to server", gameID)
		return
	}

	c.mu.Lock()
	c.gameID = gameID
	c.mu.Unlock()

	c.sendMessage(protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{GameID: gameID}))
}

// Leave unsubscribes from the current session's update room.
func (c *Channel) Leave() {
	c.mu.Lock()
	gameID := c.gameID
	c.gameID = ""
	connected := c.connected
	c.mu.Unlock()

	if !connected || gameID == "" {
		return
	}
	c.sendMessage(protocol.MustNewMessage(protocol.MsgLeaveGame, protocol.LeaveGamePayload{GameID: gameID}))
}

func (c *Channel) sendMessage(msg *protocol.Message) {
	data, err := msg.Encode()
	if err != nil {
		logger.LogError("encode %s: %v", msg.Type, err)
		return
	}

	c.mu.RLock()
	send := c.send
	c.mu.RUnlock()

	select {
	case send <- data:
	default:
		logger.LogError("send buffer full, dropping %s", msg.Type)
	}
}

func (c *Channel) readPump() {
	defer func() {
		c.markDisconnected()
		c.emit(EventDisconnected, nil)
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.LogError("read: %v", err)
			}
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			logger.LogError("decode message: %v", err)
			continue
		}
		c.dispatch(msg)
	}
}

// dispatch fans an inbound message out to its named event.
func (c *Channel) dispatch(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgGameUpdate:
		c.emit(EventGameUpdate, msg.Payload)
	case protocol.MsgVRUpdate:
		c.emit(EventVRUpdate, msg.Payload)
	case protocol.MsgJoined:
		c.emit(EventJoined, msg.Payload)
	case protocol.MsgLeft:
		c.emit(EventLeft, msg.Payload)
	case protocol.MsgError:
		c.emit(EventError, msg.Payload)
	default:
		logger.LogError("unhandled message type %q", msg.Type)
	}
}

func (c *Channel) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

func (c *Channel) markDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
}

// Close tears down the connection.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.connected = false
	if c.done != nil {
		close(c.done)
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
