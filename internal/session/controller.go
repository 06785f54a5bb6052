package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SamiraSamrose/intelligent-board-games/internal/api"
	"github.com/SamiraSamrose/intelligent-board-games/internal/apperrors"
	"github.com/SamiraSamrose/intelligent-board-games/internal/logger"
	"github.com/SamiraSamrose/intelligent-board-games/internal/protocol"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
	"github.com/SamiraSamrose/intelligent-board-games/internal/transport"
	"github.com/SamiraSamrose/intelligent-board-games/internal/vr"
)

// Reasoning is the commentary attached to the most recent automated
// decision, surfaced alongside the board.
type Reasoning struct {
	PlayerName       string
	Text             string
	InCharacterQuote string
	SocietyText      string
}

// Config sets the controller's pacing and bounds.
type Config struct {
	// AITurnDelay paces consecutive automated turns so the board is
	// readable while the decision service plays.
	AITurnDelay time.Duration

	// MaxAITurns caps one automated run so a roster of automated seats
	// cannot spin unbounded.
	MaxAITurns int

	// LogCapacity bounds the activity log.
	LogCapacity int
}

// Controller owns one client-side session: it drives turn progression
// against the remote simulation, reconciles pushed updates with local
// state, and mirrors committed changes into the immersive layer. All
// dependencies are injected; the controller holds no process-global state.
type Controller struct {
	api     *api.Client
	channel *transport.Channel
	vr      *vr.Adapter
	log     *ActivityLog
	cfg     Config

	mu        sync.Mutex
	session   *state.Session
	snapshot  *state.Snapshot
	seq       int64
	reasoning *Reasoning
	onChange  func()
	unsubs    []func()
}

// NewController wires a controller over the shared API client, push
// channel, and immersive adapter. channel and immersive may be nil for
// headless use.
func NewController(client *api.Client, channel *transport.Channel, immersive *vr.Adapter, cfg Config) *Controller {
	if cfg.MaxAITurns < 1 {
		cfg.MaxAITurns = 64
	}
	if cfg.LogCapacity < 1 {
		cfg.LogCapacity = 50
	}
	return &Controller{
		api:     client,
		channel: channel,
		vr:      immersive,
		log:     NewActivityLog(cfg.LogCapacity),
		cfg:     cfg,
	}
}

// SetOnChange registers the redraw callback invoked after every accepted
// state change. Must be set before CreateSession.
func (c *Controller) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Session returns the active session, or nil.
func (c *Controller) Session() *state.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Snapshot returns the latest accepted state. Callers treat it as
// read-only.
func (c *Controller) Snapshot() *state.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// LatestReasoning returns the commentary from the most recent automated
// decision, or nil when none has arrived.
func (c *Controller) LatestReasoning() *Reasoning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reasoning
}

// Log exposes the bounded activity log.
func (c *Controller) Log() *ActivityLog {
	return c.log
}

// CreateSession validates the seat configuration, provisions a session on
// the remote simulation, and joins its push room. Local state is untouched
// when validation or the remote call fails.
func (c *Controller) CreateSession(ctx context.Context, gameType state.GameType, roster []state.PlayerConfig, immersive bool) error {
	if !gameType.Valid() {
		return apperrors.NewValidation("game_type", fmt.Sprintf("unknown game type %q", gameType))
	}
	if len(roster) == 0 {
		roster = state.DefaultRoster(gameType)
	}
	if want := gameType.PlayerCount(); len(roster) != want {
		return apperrors.NewValidation("players", fmt.Sprintf("%s needs %d players, got %d", gameType.Title(), want, len(roster)))
	}
	for i, seat := range roster {
		if seat.Name == "" {
			return apperrors.NewValidation("players", fmt.Sprintf("seat %d has no name", i))
		}
	}

	resp, err := c.api.CreateGame(ctx, api.CreateGameRequest{
		GameType: string(gameType),
		Players:  roster,
		GameID:   uuid.NewString(),
		EnableVR: immersive,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.session = &state.Session{
		ID:        resp.GameID,
		Type:      gameType,
		Roster:    roster,
		Immersive: immersive,
	}
	c.snapshot = nil
	c.seq = 0
	c.reasoning = nil
	c.applySnapshotLocked(resp.GameState)
	c.mu.Unlock()

	c.log.Clear()
	c.log.Add(EntryGameEvent, "%s session started (%d players)", gameType.Title(), len(roster))

	if c.channel != nil {
		c.subscribe()
		c.channel.Join(resp.GameID)
	}
	if immersive && c.vr != nil && c.vr.Available(ctx) {
		if c.vr.EnableForSession(ctx, resp.GameID) {
			c.log.Add(EntryGameEvent, "immersive world active")
		}
	}

	c.notify()
	return nil
}

// Actions fetches the actions currently available to a player.
func (c *Controller) Actions(ctx context.Context, playerID int) ([]state.Action, error) {
	sess := c.Session()
	if sess == nil {
		return nil, apperrors.NewValidation("session", "no active session")
	}
	return c.api.ListActions(ctx, sess.ID, playerID)
}

// ExecuteAction submits a player's action to the simulation. A rule
// rejection leaves the local snapshot untouched and comes back as a
// ServerRejection. On success the snapshot is refreshed, the change is
// mirrored into the immersive layer, and any automated seats that follow
// are played out.
func (c *Controller) ExecuteAction(ctx context.Context, playerID int, action state.Action) error {
	sess := c.Session()
	if sess == nil {
		return apperrors.NewValidation("session", "no active session")
	}

	result, err := c.api.ExecuteAction(ctx, sess.ID, playerID, action)
	if err != nil {
		c.log.Add(EntryError, "action failed: %v", err)
		return err
	}
	if !result.Success {
		c.log.Add(EntryError, "rejected: %s", result.Error)
		return apperrors.NewRejection("execute_action", result.Error)
	}

	c.log.Add(EntryPlayerAction, "%s: %s", c.playerName(playerID), action.Label())

	if err := c.refresh(ctx); err != nil {
		return err
	}
	c.propagate(ctx, map[string]interface{}{
		"last_action": result.Action,
		"player_id":   playerID,
	})

	return c.RunAutomatedTurns(ctx)
}

// RunAutomatedTurns plays out consecutive automated seats until a human
// seat, game over, a failed decision, the turn cap, or cancellation. The
// loop is iterative and bounded; each turn is paced by AITurnDelay.
func (c *Controller) RunAutomatedTurns(ctx context.Context) error {
	sess := c.Session()
	if sess == nil {
		return nil
	}

	for turns := 0; turns < c.cfg.MaxAITurns; turns++ {
		snap := c.Snapshot()
		if snap == nil || snap.GameOver {
			return nil
		}
		playerID := currentPlayerID(snap)
		if !sess.IsAutomated(playerID) {
			return nil
		}

		if c.cfg.AITurnDelay > 0 {
			timer := time.NewTimer(c.cfg.AITurnDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := c.api.AITurn(ctx, sess.ID, playerID)
		if err != nil {
			c.log.Add(EntryError, "automated turn failed: %v", err)
			return err
		}
		if resp.Result != nil && !resp.Result.Success {
			c.log.Add(EntryError, "automated turn rejected: %s", resp.Result.Error)
			return nil
		}

		c.recordDecision(playerID, resp)

		if err := c.refresh(ctx); err != nil {
			return err
		}
	}

	c.log.Add(EntryError, "automated run stopped after %d turns", c.cfg.MaxAITurns)
	return nil
}

// HandlePush applies a server-pushed game update. Updates for other
// sessions and updates older than the current sequence are dropped.
func (c *Controller) HandlePush(payload json.RawMessage) {
	var update protocol.GameUpdatePayload
	if err := json.Unmarshal(payload, &update); err != nil {
		logger.LogError("bad game_update payload: %v", err)
		return
	}

	c.mu.Lock()
	if c.session == nil || update.GameID != c.session.ID {
		c.mu.Unlock()
		return
	}
	if !c.applySnapshotLocked(update.State) {
		c.mu.Unlock()
		return
	}
	if update.AIReasoning != "" {
		c.reasoning = &Reasoning{
			Text:             update.AIReasoning,
			InCharacterQuote: update.CharacterQuote,
			SocietyText:      update.SocietyReasoning,
		}
	}
	c.mu.Unlock()

	if update.LastAction != nil && update.LastAction.Action != "" {
		c.log.Add(EntryGameEvent, "update: %s", update.LastAction.Action)
	}
	if update.Dialogue != "" {
		c.log.Add(EntryAIAction, "%s", update.Dialogue)
	}
	c.notify()
}

// LeaveSession tears the session down: leaves the push room, drops
// subscriptions, and clears immersive and local state.
func (c *Controller) LeaveSession() {
	if c.channel != nil {
		c.channel.Leave()
	}

	c.mu.Lock()
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.session = nil
	c.snapshot = nil
	c.seq = 0
	c.reasoning = nil
	c.mu.Unlock()

	if c.vr != nil {
		c.vr.Reset()
	}
	c.notify()
}

func (c *Controller) subscribe() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unsubs = append(c.unsubs,
		c.channel.On(transport.EventGameUpdate, c.HandlePush),
		c.channel.On(transport.EventVRUpdate, func(payload json.RawMessage) {
			var update protocol.VRUpdatePayload
			if err := json.Unmarshal(payload, &update); err != nil {
				logger.LogError("bad vr_update payload: %v", err)
				return
			}
			c.log.Add(EntryGameEvent, "immersive world updated")
		}),
		c.channel.On(transport.EventError, func(payload json.RawMessage) {
			var serr protocol.ErrorPayload
			if json.Unmarshal(payload, &serr) == nil && serr.Message != "" {
				c.log.Add(EntryError, "server: %s", serr.Message)
			}
		}),
	)
}

// refresh pulls the authoritative snapshot after a committed action.
func (c *Controller) refresh(ctx context.Context) error {
	sess := c.Session()
	if sess == nil {
		return nil
	}
	snap, err := c.api.FetchState(ctx, sess.ID)
	if err != nil {
		c.log.Add(EntryError, "state refresh failed: %v", err)
		return err
	}

	c.mu.Lock()
	c.applySnapshotLocked(snap)
	c.mu.Unlock()

	c.notify()
	return nil
}

// applySnapshotLocked installs a snapshot unless it is older than what we
// already hold. Snapshots without a sequence number advance the local
// counter. Caller holds c.mu.
func (c *Controller) applySnapshotLocked(snap *state.Snapshot) bool {
	if snap == nil {
		return false
	}
	if snap.Seq > 0 {
		if snap.Seq <= c.seq {
			return false
		}
		c.seq = snap.Seq
	} else {
		c.seq++
	}
	c.snapshot = snap
	return true
}

func (c *Controller) recordDecision(playerID int, resp *api.AITurnResponse) {
	name := c.playerName(playerID)
	if resp.MimicDecision != nil {
		c.mu.Lock()
		c.reasoning = &Reasoning{
			PlayerName:       name,
			Text:             resp.MimicDecision.Reasoning,
			InCharacterQuote: resp.MimicDecision.InCharacterQuote,
			SocietyText:      resp.MimicDecision.SocietyReasoning,
		}
		c.mu.Unlock()

		if action := resp.MimicDecision.Action; action != nil {
			c.log.Add(EntryAIAction, "%s: %s", name, action.Label())
			return
		}
	}
	c.log.Add(EntryAIAction, "%s took a turn", name)
}

// propagate mirrors a committed change into the immersive world. Best
// effort only.
func (c *Controller) propagate(ctx context.Context, changes map[string]interface{}) {
	sess := c.Session()
	if sess == nil || !sess.Immersive || c.vr == nil {
		return
	}
	c.vr.PropagateChange(ctx, sess.ID, changes)
}

func (c *Controller) playerName(playerID int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil {
		for _, p := range c.snapshot.Players {
			if p.ID == playerID {
				return p.Name
			}
		}
	}
	if c.session != nil && playerID >= 0 && playerID < len(c.session.Roster) {
		return c.session.Roster[playerID].Name
	}
	return "?"
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// currentPlayerID resolves whose turn the snapshot says it is.
func currentPlayerID(snap *state.Snapshot) int {
	if snap.CurrentPlayer != nil {
		return snap.CurrentPlayer.ID
	}
	return snap.Turn
}
