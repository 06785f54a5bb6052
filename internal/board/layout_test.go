package board

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularLayout_RadiusAndSpacing(t *testing.T) {
	t.Parallel()

	center := Point{X: 40, Y: 20}
	const radius = 12.0

	for _, n := range []int{1, 2, 3, 5, 8, 12} {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("node%02d", i)
		}

		positions := CircularLayout(names, center, radius)
		require.Len(t, positions, n)

		angles := make([]float64, n)
		for i, name := range names {
			p := positions[name]
			dist := math.Hypot(p.X-center.X, p.Y-center.Y)
			assert.InDelta(t, radius, dist, 1e-9, "node %d of %d must sit on the circle", i, n)
			angles[i] = math.Atan2(p.Y-center.Y, p.X-center.X)
		}

		want := 2 * math.Pi / float64(n)
		for i := 1; i < n; i++ {
			sep := math.Mod(angles[i]-angles[i-1]+2*math.Pi, 2*math.Pi)
			assert.InDelta(t, want, sep, 1e-9, "adjacent nodes separated by 2π/n")
		}
	}
}

func TestGridPoint(t *testing.T) {
	t.Parallel()

	origin := Point{X: 4, Y: 3}
	p := GridPoint(origin, 3, 2, 5, 7)
	assert.Equal(t, Point{X: 4 + 15, Y: 3 + 14}, p)
	assert.Equal(t, origin, GridPoint(origin, 3, 2, 0, 0))
}

func TestRadialSeat_FirstSeatOnTop(t *testing.T) {
	t.Parallel()

	center := Point{X: 0, Y: 0}
	const radius = 10.0

	top := RadialSeat(0, 4, center, radius)
	assert.InDelta(t, 0, top.X, 1e-9)
	assert.InDelta(t, -radius, top.Y, 1e-9)

	right := RadialSeat(1, 4, center, radius)
	assert.InDelta(t, radius, right.X, 1e-9)
	assert.InDelta(t, 0, right.Y, 1e-9)

	for i := 0; i < 6; i++ {
		seat := RadialSeat(i, 6, center, radius)
		assert.InDelta(t, radius, math.Hypot(seat.X, seat.Y), 1e-9)
	}
}

func TestBarFill_BoundsAndMonotonic(t *testing.T) {
	t.Parallel()

	const width = 300.0

	assert.Equal(t, 0.0, BarFill(-30, -30, 8, width), "current = min fills nothing")
	assert.Equal(t, width, BarFill(8, -30, 8, width), "current = max fills the bar")

	// Monotonically increasing between bounds.
	prev := -1.0
	for cur := -30.0; cur <= 8.0; cur++ {
		fill := BarFill(cur, -30, 8, width)
		assert.Greater(t, fill, prev)
		prev = fill
	}

	// Out-of-range values clamp to [0, width].
	assert.Equal(t, 0.0, BarFill(-100, -30, 8, width))
	assert.Equal(t, width, BarFill(50, -30, 8, width))
	assert.Equal(t, 0.0, BarFill(5, 5, 5, width), "degenerate bounds fill nothing")
}

func TestTerritoryLayout(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	positions := TerritoryLayout(names, 6, 10, 5, 3)

	assert.Equal(t, Point{X: 10, Y: 3}, positions["a"])
	assert.Equal(t, Point{X: 60, Y: 3}, positions["f"])
	assert.Equal(t, Point{X: 10, Y: 8}, positions["g"], "seventh entry wraps to the second row")
	assert.Equal(t, Point{X: 20, Y: 8}, positions["h"])
}

func TestPlayerColor_PureModuloPalette(t *testing.T) {
	t.Parallel()

	for id := 0; id < 40; id++ {
		assert.Equal(t, PlayerColor(id%PaletteSize), PlayerColor(id),
			"ids in the same palette slot share a color")
	}
	assert.Equal(t, PlayerColor(1), PlayerColor(9))
	assert.NotEqual(t, PlayerColor(0), PlayerColor(1))
	assert.Equal(t, PlayerColor(0), PlayerColor(8))
}
