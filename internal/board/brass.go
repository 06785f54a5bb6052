package board

import (
	"fmt"
	"math"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// drawBrassBirmingham lays the cities out on a circle, draws the canal/rail
// connections between them, then the city nodes with their industry markers
// and the coal/iron market counters.
func drawBrassBirmingham(c *Canvas, snap *state.Snapshot) {
	if snap.Board == nil || len(snap.Board.Cities) == 0 {
		return
	}

	center := Point{X: float64(c.Width()) / 2, Y: float64(c.Height()) / 2}
	radius := math.Min(center.X, center.Y) - 4
	names := sortedKeys(snap.Board.Cities)
	positions := CircularLayout(names, center, radius)

	// Connections first so nodes draw over them.
	for _, name := range names {
		city := snap.Board.Cities[name]
		from, ok := positions[name]
		if !ok {
			continue
		}
		for _, other := range city.Connections {
			if to, ok := positions[other]; ok {
				c.Line(from, to, '·', colorDim)
			}
		}
	}

	for _, name := range names {
		city := snap.Board.Cities[name]
		pos := positions[name]

		nodeColor := colorCity
		if city.Type == "stronghold" {
			nodeColor = colorStronghold
		}
		c.SetPoint(pos, '●', nodeColor)
		c.TextCentered(int(math.Round(pos.X)), int(math.Round(pos.Y))-1, name, colorText)

		// Industry markers ring the city, colored by owner.
		for idx, industry := range city.Industries {
			angle := float64(idx) * 2 * math.Pi / float64(len(city.Industries))
			marker := Point{
				X: pos.X + math.Cos(angle)*3,
				Y: pos.Y + math.Sin(angle)*2,
			}
			c.SetPoint(marker, '■', PlayerColor(industry.Player))
		}
	}

	c.Text(1, 0, fmt.Sprintf("Coal Market: %d", len(snap.Board.CoalMarket)), colorText)
	c.Text(1, 1, fmt.Sprintf("Iron Market: %d", len(snap.Board.IronMarket)), colorText)
}
