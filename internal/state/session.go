package state

import "fmt"

// PlayerConfig is one seat configuration submitted at session creation.
type PlayerConfig struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	IsAI      bool   `json:"is_ai"`
	Class     string `json:"class,omitempty"`
}

// Session is one in-progress game instance. The identity fields are fixed at
// creation; only the snapshot is refreshed afterwards.
type Session struct {
	ID        string
	Type      GameType
	Roster    []PlayerConfig
	Immersive bool
}

// IsAutomated reports whether the given seat is driven by the remote
// decision service. Out-of-range seats are treated as human so the turn
// loop halts rather than polling a seat that cannot answer.
func (s *Session) IsAutomated(playerID int) bool {
	if s == nil || playerID < 0 || playerID >= len(s.Roster) {
		return false
	}
	return s.Roster[playerID].IsAI
}

// DefaultRoster builds the default seat configuration for a game type:
// seat 0 human, every other seat automated.
func DefaultRoster(gt GameType) []PlayerConfig {
	opts := gt.CharacterOptions()
	roster := make([]PlayerConfig, gt.PlayerCount())
	for i := range roster {
		opt := opts[i%len(opts)]
		roster[i] = PlayerConfig{
			Name:      fmt.Sprintf("Player %d", i+1),
			Character: opt.Value,
			IsAI:      i > 0,
			Class:     opt.Value,
		}
	}
	return roster
}
