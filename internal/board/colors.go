package board

import "github.com/charmbracelet/lipgloss"

// palette is the fixed player color cycle shared by board tokens and the
// sidebar.
var palette = []lipgloss.Color{
	"#e74c3c",
	"#3498db",
	"#2ecc71",
	"#f39c12",
	"#9b59b6",
	"#1abc9c",
	"#e67e22",
	"#34495e",
}

// PaletteSize is the number of distinct player colors.
const PaletteSize = 8

// PlayerColor maps a player id to its palette color. Pure function of
// id mod palette size; negative ids wrap the same way.
func PlayerColor(playerID int) lipgloss.Color {
	idx := playerID % len(palette)
	if idx < 0 {
		idx += len(palette)
	}
	return palette[idx]
}

// Fixed scenery colors.
const (
	colorText       = lipgloss.Color("#ffffff")
	colorDim        = lipgloss.Color("#888888")
	colorStronghold = lipgloss.Color("#8b4513")
	colorCity       = lipgloss.Color("#aaaaaa")
	colorSpice      = lipgloss.Color("#ff8c00")
	colorMonster    = lipgloss.Color("#ff0000")
	colorAlive      = lipgloss.Color("#2ecc71")
	colorDead       = lipgloss.Color("#95a5a6")
	colorDeck       = lipgloss.Color("#e74c3c")
	colorTemp       = lipgloss.Color("#ff4444")
	colorOxygen     = lipgloss.Color("#44ff44")
	colorOcean      = lipgloss.Color("#4444ff")
)
