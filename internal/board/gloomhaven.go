package board

import (
	"math"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// Scenario tiles map to screen cells at a fixed origin and cell size.
var gloomOrigin = Point{X: 4, Y: 3}

const (
	gloomCellW = 3
	gloomCellH = 2
)

// drawGloomhaven paints the scenario room tiles, then player tokens (first
// letter of the name, palette colored) and monster tokens on top.
func drawGloomhaven(c *Canvas, snap *state.Snapshot) {
	if snap.Scenario == nil {
		return
	}

	for _, roomName := range sortedKeys(snap.Scenario.Rooms) {
		room := snap.Scenario.Rooms[roomName]
		for _, tile := range room.Tiles {
			p := GridPoint(gloomOrigin, gloomCellW, gloomCellH, tile.X(), tile.Y())
			c.FillRect(int(p.X), int(p.Y), gloomCellW-1, gloomCellH-1, '░', colorDim)
		}
	}

	for _, player := range snap.Players {
		if player.Position == nil {
			continue
		}
		p := GridPoint(gloomOrigin, gloomCellW, gloomCellH, player.Position.X(), player.Position.Y())
		token := '?'
		if player.Name != "" {
			token = []rune(player.Name)[0]
		}
		c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), token, PlayerColor(player.ID))
	}

	for _, monster := range snap.Monsters {
		if monster.Position == nil {
			continue
		}
		p := GridPoint(gloomOrigin, gloomCellW, gloomCellH, monster.Position.X(), monster.Position.Y())
		c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), 'M', colorMonster)
	}
}
