package board

import (
	"fmt"
	"math"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// drawExplodingKittens puts the draw deck in the middle and seats the
// players on a ring around it, marking who is still alive.
func drawExplodingKittens(c *Canvas, snap *state.Snapshot) {
	c.TextCentered(c.Width()/2, 0, "EXPLODING KITTENS", colorText)

	center := Point{X: float64(c.Width()) / 2, Y: float64(c.Height()) / 2}
	deckX, deckY := int(center.X), int(center.Y)

	c.Box(deckX-5, deckY-2, 11, 5, colorDeck)
	c.TextCentered(deckX, deckY-1, "DECK", colorText)
	c.TextCentered(deckX, deckY+1, fmt.Sprintf("%d", snap.DeckRemaining), colorText)

	n := len(snap.Players)
	if n == 0 {
		return
	}

	radius := math.Min(center.X, center.Y) - 3
	for i, player := range snap.Players {
		seat := RadialSeat(i, n, center, radius)
		x, y := int(math.Round(seat.X)), int(math.Round(seat.Y))

		seatColor := colorAlive
		if !player.Alive {
			seatColor = colorDead
		}
		c.Set(x, y, '◉', seatColor)
		c.TextCentered(x, y-1, player.Name, PlayerColor(player.ID))
		c.TextCentered(x, y+1, fmt.Sprintf("Cards: %d", len(player.Hand)), colorDim)
	}
}
