package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
server:
  api_base_url: "http://games.example:8080/api"
  websocket_url: "ws://games.example:8080/ws"

game:
  ai_turn_delay: 250
  max_ai_turns: 16
  log_capacity: 20
  request_timeout: 5

ui:
  frame_interval: 33
  sound: false
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://games.example:8080/api", cfg.Server.APIBaseURL)
	assert.Equal(t, "ws://games.example:8080/ws", cfg.Server.WebSocketURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.AITurnDelayDuration())
	assert.Equal(t, 16, cfg.Game.MaxAITurns)
	assert.Equal(t, 20, cfg.Game.LogCapacity)
	assert.Equal(t, 5*time.Second, cfg.Game.RequestTimeoutDuration())
	assert.Equal(t, 33*time.Millisecond, cfg.UI.FrameIntervalDuration())
	assert.False(t, cfg.UI.Sound)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Server.APIBaseURL, cfg.Server.APIBaseURL)
	assert.Equal(t, def.Game.AITurnDelay, cfg.Game.AITurnDelay)
	assert.Equal(t, def.Game.MaxAITurns, cfg.Game.MaxAITurns)
	assert.Equal(t, def.UI.FrameInterval, cfg.UI.FrameInterval)
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	content := `
server:
  api_base_url: "http://only-this:9000/api"
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://only-this:9000/api", cfg.Server.APIBaseURL)
	assert.Equal(t, Default().Server.WebSocketURL, cfg.Server.WebSocketURL)
	assert.Equal(t, Default().Game.LogCapacity, cfg.Game.LogCapacity)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IBG_API_BASE_URL", "http://env-wins:7000/api")
	t.Setenv("IBG_AI_TURN_DELAY_MS", "125")
	t.Setenv("IBG_SOUND", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "http://env-wins:7000/api", cfg.Server.APIBaseURL)
	assert.Equal(t, 125*time.Millisecond, cfg.Game.AITurnDelayDuration())
	assert.False(t, cfg.UI.Sound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
