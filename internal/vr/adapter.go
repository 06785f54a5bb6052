package vr

import (
	"context"
	"sync"

	"github.com/SamiraSamrose/intelligent-board-games/internal/api"
	"github.com/SamiraSamrose/intelligent-board-games/internal/logger"
)

// Adapter bridges committed session changes into the optional immersive
// world. Every call degrades gracefully: an unreachable or unprovisioned
// immersive backend never surfaces as an error to the caller, only to the
// log.
type Adapter struct {
	api *api.Client

	mu        sync.Mutex
	checked   bool
	available bool
	session   *api.VRSessionData
}

// NewAdapter creates an adapter over the shared API client.
func NewAdapter(client *api.Client) *Adapter {
	return &Adapter{api: client}
}

// Available probes the immersive backend once and caches the verdict. A
// probe failure counts as unavailable.
func (a *Adapter) Available(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.checked {
		return a.available
	}

	resp, err := a.api.CheckVR(ctx)
	if err != nil {
		logger.LogError("immersive availability check failed: %v", err)
		a.checked = true
		a.available = false
		return false
	}

	a.checked = true
	a.available = resp.VRAvailable
	return a.available
}

// EnableForSession fetches the immersive session descriptor for a game and
// reports whether world generation is on. Returns false on any failure.
func (a *Adapter) EnableForSession(ctx context.Context, gameID string) bool {
	resp, err := a.api.VRSession(ctx, gameID)
	if err != nil {
		logger.LogError("immersive session fetch failed for %s: %v", gameID, err)
		return false
	}
	if resp.VRSession == nil {
		return false
	}

	a.mu.Lock()
	a.session = resp.VRSession
	a.mu.Unlock()
	return resp.VRSession.Genie3Available
}

// Session returns the cached immersive descriptor, or nil when none is
// active.
func (a *Adapter) Session() *api.VRSessionData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// PropagateChange mirrors a committed state change into the immersive
// world. Propagation is best effort; failures are logged and swallowed so
// the visual sync path never stalls on the immersive layer.
func (a *Adapter) PropagateChange(ctx context.Context, gameID string, changes map[string]interface{}) {
	if len(changes) == 0 {
		return
	}
	if _, err := a.api.VRUpdate(ctx, gameID, changes); err != nil {
		logger.LogError("immersive propagation failed for %s: %v", gameID, err)
	}
}

// Reset clears cached availability and session state. Called when a
// session ends.
func (a *Adapter) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checked = false
	a.available = false
	a.session = nil
}
