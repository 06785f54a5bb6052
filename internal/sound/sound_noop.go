//go:build ci

package sound

// Cue names for session events.
const (
	CueAction  = "action"
	CueTurn    = "turn"
	CueVictory = "victory"
	CueError   = "error"
	CueShuffle = "shuffle"
	CueExplode = "explode"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Init() error {
	return nil
}

func (m *Manager) Play(name string) {
	// No-op
}

func (m *Manager) Close() {
	// No-op
}
