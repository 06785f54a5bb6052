package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

var dndOrigin = Point{X: 2, Y: 2}

// drawDungeonsDragons draws the terrain grid with occupant tokens and a
// character sheet column for every non-DM player.
func drawDungeonsDragons(c *Canvas, snap *state.Snapshot) {
	if snap.Board == nil || len(snap.Board.Grid) == 0 {
		return
	}

	for rowIdx, row := range snap.Board.Grid {
		for colIdx, gridCell := range row {
			p := GridPoint(dndOrigin, 2, 1, colIdx, rowIdx)
			x, y := int(p.X), int(p.Y)

			ch, color := terrainGlyph(gridCell.Terrain)
			c.Set(x, y, ch, color)

			if gridCell.Occupant != nil {
				c.Set(x, y, '●', PlayerColor(*gridCell.Occupant))
			}
		}
	}

	infoX := c.Width() - 28
	infoY := 2
	for _, player := range snap.Players {
		if player.Role == "dungeon_master" {
			continue
		}
		c.Text(infoX, infoY, fmt.Sprintf("%s (%s)", player.Name, player.Class), PlayerColor(player.ID))
		c.Text(infoX, infoY+1, fmt.Sprintf("HP: %d/%d | AC: %d", player.CurrentHP, player.MaxHP, player.AC), colorDim)
		infoY += 3
	}
}

func terrainGlyph(terrain string) (rune, lipgloss.Color) {
	switch terrain {
	case "wall":
		return '#', colorDim
	case "stone_floor":
		return '.', colorCity
	case "door":
		return '+', colorStronghold
	default:
		return ' ', colorDim
	}
}
