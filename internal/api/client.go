// Package api implements the HTTP client for the game server's REST
// endpoints. It reports NetworkError for transport and HTTP-level failures;
// interpreting a success:false result is left to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SamiraSamrose/intelligent-board-games/internal/apperrors"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// Client talks to the game server REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:5000/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateGameRequest is the session creation request.
type CreateGameRequest struct {
	GameType string               `json:"game_type"`
	Players  []state.PlayerConfig `json:"players"`
	GameID   string               `json:"game_id"`
	EnableVR bool                 `json:"enable_vr"`
}

// CreateGameResponse is the session creation response.
type CreateGameResponse struct {
	GameID    string          `json:"game_id"`
	GameState *state.Snapshot `json:"game_state"`
	VRData    json.RawMessage `json:"vr_data,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// ActionsResponse lists the actions available to a player.
type ActionsResponse struct {
	Actions []state.Action `json:"actions"`
}

// ExecuteRequest submits an action for a player.
type ExecuteRequest struct {
	PlayerID int          `json:"player_id"`
	Action   state.Action `json:"action"`
}

// ExecuteResult is the rule engine's verdict on an action.
type ExecuteResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AITurnRequest asks the decision service to take one automated turn.
type AITurnRequest struct {
	PlayerID int `json:"player_id"`
}

// Decision is the reasoning payload attached to an automated decision.
type Decision struct {
	Action           *state.Action   `json:"action,omitempty"`
	Reasoning        string          `json:"reasoning,omitempty"`
	InCharacterQuote string          `json:"in_character_quote,omitempty"`
	SocietyReasoning string          `json:"society_reasoning,omitempty"`
	DiversityMetrics json.RawMessage `json:"diversity_metrics,omitempty"`
}

// AITurnResponse is the automated-turn response.
type AITurnResponse struct {
	Result         *ExecuteResult  `json:"result"`
	MimicDecision  *Decision       `json:"mimic_decision,omitempty"`
	NanoPrediction json.RawMessage `json:"nano_prediction,omitempty"`
	SocietyMetrics json.RawMessage `json:"society_metrics,omitempty"`
}

// VRCheckResponse reports immersive backend availability.
type VRCheckResponse struct {
	VRAvailable  bool            `json:"vr_available"`
	Genie3Status string          `json:"genie3_status,omitempty"`
	Features     map[string]bool `json:"features,omitempty"`
}

// VRSessionData is the immersive session descriptor.
type VRSessionData struct {
	Genie3Available bool            `json:"genie3_available"`
	World           json.RawMessage `json:"world,omitempty"`
	BoardLayout     json.RawMessage `json:"board_layout,omitempty"`
}

// VRSessionResponse wraps the immersive session for a game.
type VRSessionResponse struct {
	GameID    string         `json:"game_id"`
	VRSession *VRSessionData `json:"vr_session"`
	VREnabled bool           `json:"vr_enabled"`
}

// VRUpdateRequest mirrors committed state changes into the immersive world.
type VRUpdateRequest struct {
	StateChanges map[string]interface{} `json:"state_changes"`
}

// VRUpdateResponse reports whether the immersive world accepted an update.
type VRUpdateResponse struct {
	Success bool `json:"success"`
}

// CreateGame creates a new session on the server.
func (c *Client) CreateGame(ctx context.Context, req CreateGameRequest) (*CreateGameResponse, error) {
	var resp CreateGameResponse
	if err := c.post(ctx, "create session", "/games/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListActions fetches the actions available to a player.
func (c *Client) ListActions(ctx context.Context, gameID string, playerID int) ([]state.Action, error) {
	path := fmt.Sprintf("/games/%s/actions?player_id=%d", url.PathEscape(gameID), playerID)
	var resp ActionsResponse
	if err := c.get(ctx, "list actions", path, &resp); err != nil {
		return nil, err
	}
	return resp.Actions, nil
}

// ExecuteAction submits an action for execution.
func (c *Client) ExecuteAction(ctx context.Context, gameID string, playerID int, action state.Action) (*ExecuteResult, error) {
	path := fmt.Sprintf("/games/%s/execute", url.PathEscape(gameID))
	var resp ExecuteResult
	if err := c.post(ctx, "execute action", path, ExecuteRequest{PlayerID: playerID, Action: action}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchState retrieves the full session snapshot.
func (c *Client) FetchState(ctx context.Context, gameID string) (*state.Snapshot, error) {
	path := fmt.Sprintf("/games/%s/state", url.PathEscape(gameID))
	var snap state.Snapshot
	if err := c.get(ctx, "fetch snapshot", path, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// AITurn requests one automated turn for a player.
func (c *Client) AITurn(ctx context.Context, gameID string, playerID int) (*AITurnResponse, error) {
	path := fmt.Sprintf("/games/%s/ai_turn", url.PathEscape(gameID))
	var resp AITurnResponse
	if err := c.post(ctx, "automated turn", path, AITurnRequest{PlayerID: playerID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckVR queries immersive backend availability.
func (c *Client) CheckVR(ctx context.Context) (*VRCheckResponse, error) {
	var resp VRCheckResponse
	if err := c.get(ctx, "immersive availability", "/vr/check", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VRSession enables and fetches the immersive session for a game.
func (c *Client) VRSession(ctx context.Context, gameID string) (*VRSessionResponse, error) {
	path := fmt.Sprintf("/games/%s/vr/session", url.PathEscape(gameID))
	var resp VRSessionResponse
	if err := c.get(ctx, "immersive enable", path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VRUpdate propagates committed state changes into the immersive world.
func (c *Client) VRUpdate(ctx context.Context, gameID string, changes map[string]interface{}) (*VRUpdateResponse, error) {
	path := fmt.Sprintf("/games/%s/vr/update", url.PathEscape(gameID))
	var resp VRUpdateResponse
	if err := c.post(ctx, "immersive update", path, VRUpdateRequest{StateChanges: changes}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.NewNetwork(op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewNetwork(op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return apperrors.NewNetwork(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewNetwork(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetwork(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Error bodies look like {"error": "..."}; fall back to the status.
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &body) == nil && body.Error != "" {
			return apperrors.NewNetwork(op, fmt.Errorf("%s: %s", resp.Status, body.Error))
		}
		return apperrors.NewNetwork(op, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewNetwork(op, err)
	}
	return nil
}
