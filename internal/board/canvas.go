// Package board renders per-game board layouts from a state snapshot onto a
// character canvas. Layout math lives in layout.go; each game gets one draw
// routine registered with the Renderer.
package board

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch    rune
	color lipgloss.Color
}

// Canvas is a fixed-size character grid. A fresh canvas is handed to each
// draw routine, so no frame state survives between renders.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set places a colored rune. Out-of-bounds writes are clipped.
func (c *Canvas) Set(x, y int, ch rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{ch: ch, color: color}
}

// SetPoint places a rune at a float position, rounding to the nearest cell.
func (c *Canvas) SetPoint(p Point, ch rune, color lipgloss.Color) {
	c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), ch, color)
}

// Text writes a string starting at (x, y), clipped at the right edge.
func (c *Canvas) Text(x, y int, s string, color lipgloss.Color) {
	for i, ch := range []rune(s) {
		c.Set(x+i, y, ch, color)
	}
}

// TextCentered writes a string centered on x.
func (c *Canvas) TextCentered(x, y int, s string, color lipgloss.Color) {
	c.Text(x-len([]rune(s))/2, y, s, color)
}

// Line draws a straight segment between two points using Bresenham.
func (c *Canvas) Line(from, to Point, ch rune, color lipgloss.Color) {
	x0, y0 := int(math.Round(from.X)), int(math.Round(from.Y))
	x1, y1 := int(math.Round(to.X)), int(math.Round(to.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills a rectangle with a rune.
func (c *Canvas) FillRect(x, y, w, h int, ch rune, color lipgloss.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy, ch, color)
		}
	}
}

// Box draws a rectangle outline.
func (c *Canvas) Box(x, y, w, h int, color lipgloss.Color) {
	if w < 2 || h < 2 {
		return
	}
	for xx := x + 1; xx < x+w-1; xx++ {
		c.Set(xx, y, '─', color)
		c.Set(xx, y+h-1, '─', color)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		c.Set(x, yy, '│', color)
		c.Set(x+w-1, yy, '│', color)
	}
	c.Set(x, y, '┌', color)
	c.Set(x+w-1, y, '┐', color)
	c.Set(x, y+h-1, '└', color)
	c.Set(x+w-1, y+h-1, '┘', color)
}

// String renders the canvas with per-cell colors applied. Runs of cells
// sharing a color are styled together.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteRune(cl.ch)
		}
		flush()
	}
	return sb.String()
}

// PlainString renders the canvas without color codes. Tests assert on it.
func (c *Canvas) PlainString() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range row {
			sb.WriteRune(cl.ch)
		}
	}
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
