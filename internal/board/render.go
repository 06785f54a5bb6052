package board

import (
	"sort"

	"github.com/SamiraSamrose/intelligent-board-games/internal/logger"
	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// RenderFunc draws one game's board from a snapshot onto a fresh canvas.
type RenderFunc func(c *Canvas, snap *state.Snapshot)

// Renderer dispatches a game-type tag to its draw routine. The registry is
// built once at construction; draw routines are pure functions of the
// snapshot and retain nothing between calls.
type Renderer struct {
	width    int
	height   int
	registry map[state.GameType]RenderFunc
}

// NewRenderer creates a renderer with every supported game registered.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:    width,
		height:   height,
		registry: make(map[state.GameType]RenderFunc),
	}
	r.registry[state.GameBrassBirmingham] = drawBrassBirmingham
	r.registry[state.GameGloomhaven] = drawGloomhaven
	r.registry[state.GameTerraformingMars] = drawTerraformingMars
	r.registry[state.GameDune] = drawDune
	r.registry[state.GameDungeonsDragons] = drawDungeonsDragons
	r.registry[state.GameExplodingKittens] = drawExplodingKittens
	return r
}

// Render clears the prior frame and draws the board for the game type. An
// unrecognized tag draws nothing and raises no error; the blank frame is
// returned and the miss is logged for diagnostics.
func (r *Renderer) Render(gameType state.GameType, snap *state.Snapshot) string {
	canvas := NewCanvas(r.width, r.height)
	fn, ok := r.registry[gameType]
	if !ok {
		logger.LogError("no renderer registered for game type %q", gameType)
		return canvas.String()
	}
	if snap != nil {
		fn(canvas, snap)
	}
	return canvas.String()
}

// RenderPlain renders without color codes. Used by tests.
func (r *Renderer) RenderPlain(gameType state.GameType, snap *state.Snapshot) string {
	canvas := NewCanvas(r.width, r.height)
	fn, ok := r.registry[gameType]
	if !ok {
		return canvas.PlainString()
	}
	if snap != nil {
		fn(canvas, snap)
	}
	return canvas.PlainString()
}

// sortedKeys returns map keys in a stable order so layouts are
// deterministic across renders.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
