package board

import "math"

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

// CircularLayout places n named nodes on a circle of the given radius:
// node i sits at center + R·(cos θᵢ, sin θᵢ) with θᵢ = 2π·i/n. The input
// order determines the angles, so callers pass a stable name order.
func CircularLayout(names []string, center Point, radius float64) map[string]Point {
	positions := make(map[string]Point, len(names))
	n := len(names)
	for i, name := range names {
		angle := float64(i) / float64(n) * 2 * math.Pi
		positions[name] = Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	return positions
}

// GridPoint maps grid cell (x, y) to origin + (x·cellW, y·cellH).
func GridPoint(origin Point, cellW, cellH float64, x, y int) Point {
	return Point{
		X: origin.X + float64(x)*cellW,
		Y: origin.Y + float64(y)*cellH,
	}
}

// RadialSeat places seat i of n around a center at angle 2π·i/n − π/2, so
// seat 0 sits at the top.
func RadialSeat(i, n int, center Point, radius float64) Point {
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	return Point{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// TerritoryLayout arranges named regions in rows of cols columns. Column c
// sits at (c+1)·cellW, row r at topY + r·rowH.
func TerritoryLayout(names []string, cols int, cellW, rowH, topY float64) map[string]Point {
	positions := make(map[string]Point, len(names))
	for i, name := range names {
		row := i / cols
		col := i % cols
		positions[name] = Point{
			X: float64(col+1) * cellW,
			Y: topY + float64(row)*rowH,
		}
	}
	return positions
}

// BarFill returns the filled width of a bounded-parameter bar:
// width · clamp((current−min)/(max−min), 0, 1).
func BarFill(current, min, max, width float64) float64 {
	if max == min {
		return 0
	}
	return width * Clamp((current-min)/(max-min), 0, 1)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
