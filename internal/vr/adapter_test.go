package vr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiraSamrose/intelligent-board-games/internal/api"
)

func newTestAdapter(t *testing.T, handler http.Handler) (*Adapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAdapter(api.NewClient(srv.URL+"/api", 2*time.Second)), srv
}

func TestAvailable_CachesProbe(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/api/vr/check", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"vr_available": true})
	}))

	assert.True(t, adapter.Available(context.Background()))
	assert.True(t, adapter.Available(context.Background()))
	assert.Equal(t, int64(1), calls.Load(), "probe runs once")
}

func TestAvailable_ProbeFailureMeansUnavailable(t *testing.T) {
	t.Parallel()

	adapter, srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	}))
	_ = srv

	assert.False(t, adapter.Available(context.Background()))
	assert.False(t, adapter.Available(context.Background()), "failed probe is cached too")
}

func TestEnableForSession(t *testing.T) {
	t.Parallel()

	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/games/g1/vr/session", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"game_id":    "g1",
			"vr_enabled": true,
			"vr_session": map[string]any{"genie3_available": true},
		})
	}))

	assert.True(t, adapter.EnableForSession(context.Background(), "g1"))
	require.NotNil(t, adapter.Session())
	assert.True(t, adapter.Session().Genie3Available)

	adapter.Reset()
	assert.Nil(t, adapter.Session())
}

func TestPropagateChange_SwallowsFailures(t *testing.T) {
	t.Parallel()

	adapter, srv := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"world offline"}`, http.StatusBadGateway)
	}))
	_ = srv

	// Must not panic or surface the failure.
	adapter.PropagateChange(context.Background(), "g1", map[string]interface{}{
		"current_player": 2,
	})
}

func TestPropagateChange_SkipsEmptyChangeSet(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	adapter.PropagateChange(context.Background(), "g1", nil)
	assert.Equal(t, int64(0), calls.Load())
}
