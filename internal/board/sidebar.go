package board

import (
	"fmt"

	"github.com/SamiraSamrose/intelligent-board-games/internal/state"
)

// Stat is one display row of the player sidebar.
type Stat struct {
	Label string
	Value string
}

// PlayerStats selects the sidebar stat fields for a player by game type.
// The dungeon master seat carries no stat block.
func PlayerStats(gameType state.GameType, player state.Player) []Stat {
	switch gameType {
	case state.GameBrassBirmingham:
		return []Stat{
			{Label: "Money", Value: "£" + state.FormatNumber(player.Money)},
			{Label: "Income", Value: fmt.Sprintf("%d", player.Income)},
			{Label: "Score", Value: fmt.Sprintf("%d", player.Score)},
		}
	case state.GameGloomhaven:
		return []Stat{
			{Label: "HP", Value: fmt.Sprintf("%d/%d", player.CurrentHP, player.MaxHP)},
			{Label: "XP", Value: fmt.Sprintf("%d", player.Experience)},
			{Label: "Cards", Value: fmt.Sprintf("%d", len(player.Hand))},
		}
	case state.GameTerraformingMars:
		return []Stat{
			{Label: "MC", Value: state.FormatNumber(player.Megacredits)},
			{Label: "TR", Value: fmt.Sprintf("%d", player.TerraformRating)},
			{Label: "Steel", Value: fmt.Sprintf("%d", player.Steel)},
			{Label: "Titanium", Value: fmt.Sprintf("%d", player.Titanium)},
		}
	case state.GameDune:
		return []Stat{
			{Label: "Spice", Value: fmt.Sprintf("%d", player.Spice)},
			{Label: "Forces", Value: fmt.Sprintf("%d", player.Forces)},
			{Label: "Cards", Value: fmt.Sprintf("%d", len(player.TreacheryCards))},
		}
	case state.GameDungeonsDragons:
		if player.Role == "dungeon_master" {
			return nil
		}
		level := player.Level
		if level == 0 {
			level = 1
		}
		return []Stat{
			{Label: "HP", Value: fmt.Sprintf("%d/%d", player.CurrentHP, player.MaxHP)},
			{Label: "AC", Value: fmt.Sprintf("%d", player.AC)},
			{Label: "Level", Value: fmt.Sprintf("%d", level)},
		}
	case state.GameExplodingKittens:
		status := "Eliminated"
		if player.Alive {
			status = "Alive"
		}
		return []Stat{
			{Label: "Cards", Value: fmt.Sprintf("%d", len(player.Hand))},
			{Label: "Status", Value: status},
		}
	default:
		return nil
	}
}
