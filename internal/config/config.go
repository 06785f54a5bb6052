// Package config loads the client configuration from YAML with environment
// overrides for deployment-specific values.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	Server Server `yaml:"server"`
	Game   Game   `yaml:"game"`
	UI     UI     `yaml:"ui"`
}

// Server holds backend endpoints.
type Server struct {
	APIBaseURL   string `yaml:"api_base_url"`
	WebSocketURL string `yaml:"websocket_url"`
}

// Game tunes the turn protocol.
type Game struct {
	AITurnDelay    int `yaml:"ai_turn_delay"`   // automated-turn pacing (milliseconds)
	MaxAITurns     int `yaml:"max_ai_turns"`    // hard cap on consecutive automated turns
	LogCapacity    int `yaml:"log_capacity"`    // activity log entries kept
	RequestTimeout int `yaml:"request_timeout"` // per request (seconds)
}

// UI tunes rendering.
type UI struct {
	FrameInterval int  `yaml:"frame_interval"` // animation tick (milliseconds)
	Sound         bool `yaml:"sound"`
}

// AITurnDelayDuration returns the automated-turn pacing delay.
func (g *Game) AITurnDelayDuration() time.Duration {
	return time.Duration(g.AITurnDelay) * time.Millisecond
}

// RequestTimeoutDuration returns the per-request timeout.
func (g *Game) RequestTimeoutDuration() time.Duration {
	return time.Duration(g.RequestTimeout) * time.Second
}

// FrameIntervalDuration returns the animation tick interval.
func (u *UI) FrameIntervalDuration() time.Duration {
	return time.Duration(u.FrameInterval) * time.Millisecond
}

// Load reads a YAML config file, fills defaults and applies env overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			APIBaseURL:   "http://localhost:5000/api",
			WebSocketURL: "ws://localhost:5000/ws",
		},
		Game: Game{
			AITurnDelay:    1000,
			MaxAITurns:     64,
			LogCapacity:    50,
			RequestTimeout: 15,
		},
		UI: UI{
			FrameInterval: 50,
			Sound:         true,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Server.APIBaseURL == "" {
		cfg.Server.APIBaseURL = def.Server.APIBaseURL
	}
	if cfg.Server.WebSocketURL == "" {
		cfg.Server.WebSocketURL = def.Server.WebSocketURL
	}
	if cfg.Game.AITurnDelay == 0 {
		cfg.Game.AITurnDelay = def.Game.AITurnDelay
	}
	if cfg.Game.MaxAITurns == 0 {
		cfg.Game.MaxAITurns = def.Game.MaxAITurns
	}
	if cfg.Game.LogCapacity == 0 {
		cfg.Game.LogCapacity = def.Game.LogCapacity
	}
	if cfg.Game.RequestTimeout == 0 {
		cfg.Game.RequestTimeout = def.Game.RequestTimeout
	}
	if cfg.UI.FrameInterval == 0 {
		cfg.UI.FrameInterval = def.UI.FrameInterval
	}
}

// applyEnv overrides config values from the environment. A .env file in the
// working directory is honored when present.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("IBG_API_BASE_URL"); v != "" {
		cfg.Server.APIBaseURL = v
	}
	if v := os.Getenv("IBG_WEBSOCKET_URL"); v != "" {
		cfg.Server.WebSocketURL = v
	}
	if v := os.Getenv("IBG_AI_TURN_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Game.AITurnDelay = n
		}
	}
	if v := os.Getenv("IBG_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.Sound = b
		}
	}
}
