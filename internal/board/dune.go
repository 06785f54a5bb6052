package board

import (
	"fmt"
	"math"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

const duneStormSectors = 18

// drawDune arranges territories in a six-column grid with spice counts and
// occupying forces, and marks the storm's current sector on a ring around
// the board center.
func drawDune(c *Canvas, snap *state.Snapshot) {
	if snap.Board == nil || len(snap.Board.Territories) == 0 {
		return
	}

	names := sortedKeys(snap.Board.Territories)
	cellW := float64(c.Width()) / 7
	positions := TerritoryLayout(names, 6, cellW, 5, 3)

	for _, name := range names {
		territory := snap.Board.Territories[name]
		pos := positions[name]
		x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))

		boxColor := colorCity
		if territory.Type == "stronghold" {
			boxColor = colorStronghold
		}
		c.Box(x-4, y-1, 9, 3, boxColor)

		label := name
		if len(label) > 8 {
			label = label[:8]
		}
		c.TextCentered(x, y-2, label, colorText)

		if territory.Spice > 0 {
			c.TextCentered(x, y, fmt.Sprintf("%d", territory.Spice), colorSpice)
		}

		for idx, occ := range territory.Occupants {
			offset := idx - len(territory.Occupants)/2
			c.Set(x+offset*3, y+1, '▪', PlayerColor(occ.PlayerID))
			c.Text(x+offset*3+1, y+1, fmt.Sprintf("%d", occ.Forces), PlayerColor(occ.PlayerID))
		}
	}

	// Storm marker on a ring at the sector's angle.
	center := Point{X: float64(c.Width()) / 2, Y: float64(c.Height()) / 2}
	angle := float64(snap.Board.StormPosition) / duneStormSectors * 2 * math.Pi
	marker := Point{
		X: center.X + math.Cos(angle)*(center.X-2),
		Y: center.Y + math.Sin(angle)*(center.Y-2),
	}
	c.SetPoint(marker, '◈', colorStronghold)
	c.Text(1, 0, fmt.Sprintf("Storm: sector %d/%d", snap.Board.StormPosition, duneStormSectors), colorText)
}
