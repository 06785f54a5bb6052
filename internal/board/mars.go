package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// Global parameter bounds.
const (
	marsTempMin   = -30
	marsTempMax   = 8
	marsOxygenMax = 14
	marsOceansMax = 9
	marsBarWidth  = 30
)

// drawTerraformingMars draws the three global-parameter tracks as bounded
// bars and a corporation roster on the right.
func drawTerraformingMars(c *Canvas, snap *state.Snapshot) {
	c.TextCentered(c.Width()/2, 0, "TERRAFORMING MARS", colorText)

	params := snap.GlobalParameters
	if params == nil {
		params = &state.GlobalParameters{Temperature: marsTempMin}
	}

	drawParameterBar(c, 2, 3, "Temperature", float64(params.Temperature), marsTempMin, marsTempMax, colorTemp)
	drawParameterBar(c, 2, 7, "Oxygen", float64(params.Oxygen), 0, marsOxygenMax, colorOxygen)
	drawParameterBar(c, 2, 11, "Oceans", float64(params.Oceans), 0, marsOceansMax, colorOcean)

	x := c.Width() - 26
	y := 3
	c.Text(x, y, "Players:", colorText)
	y += 2
	for _, player := range snap.Players {
		c.Set(x, y, '■', PlayerColor(player.ID))
		corp := player.Corporation
		if corp == "" {
			corp = "Unknown"
		}
		c.Text(x+2, y, fmt.Sprintf("%s (%s)", player.Name, corp), colorText)
		c.Text(x+2, y+1, fmt.Sprintf("MC: %d | TR: %d", player.Megacredits, player.TerraformRating), colorDim)
		y += 3
	}
}

// drawParameterBar draws a labeled bounded-parameter bar with its current
// value; fill width is marsBarWidth · clamp((cur−min)/(max−min), 0, 1).
func drawParameterBar(c *Canvas, x, y int, label string, current, min, max float64, color lipgloss.Color) {
	c.Text(x, y, label, colorText)

	fill := int(BarFill(current, min, max, marsBarWidth))
	for i := 0; i < marsBarWidth; i++ {
		ch := '░'
		barColor := colorDim
		if i < fill {
			ch = '█'
			barColor = color
		}
		c.Set(x+i, y+1, ch, barColor)
	}
	c.Text(x+marsBarWidth+2, y+1, fmt.Sprintf("%g", current), colorText)
}
