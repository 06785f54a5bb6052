// Package state defines the shared session-state model: game types, players,
// actions and the wholesale-replaceable snapshot received from the server.
package state

import "fmt"

// GameType identifies one of the supported board games.
type GameType string

const (
	GameBrassBirmingham  GameType = "brass_birmingham"
	GameGloomhaven       GameType = "gloomhaven"
	GameTerraformingMars GameType = "terraforming_mars"
	GameDune             GameType = "dune"
	GameDungeonsDragons  GameType = "dungeons_dragons"
	GameExplodingKittens GameType = "exploding_kittens"
)

// AllGameTypes lists every supported game in menu order.
var AllGameTypes = []GameType{
	GameBrassBirmingham,
	GameGloomhaven,
	GameTerraformingMars,
	GameDune,
	GameDungeonsDragons,
	GameExplodingKittens,
}

// ParseGameType validates a game-type tag.
func ParseGameType(s string) (GameType, error) {
	for _, gt := range AllGameTypes {
		if string(gt) == s {
			return gt, nil
		}
	}
	return "", fmt.Errorf("unknown game type %q", s)
}

// Valid reports whether the game type is one of the supported tags.
func (gt GameType) Valid() bool {
	_, err := ParseGameType(string(gt))
	return err == nil
}

// Title returns a display name for the game.
func (gt GameType) Title() string {
	switch gt {
	case GameBrassBirmingham:
		return "Brass: Birmingham"
	case GameGloomhaven:
		return "Gloomhaven"
	case GameTerraformingMars:
		return "Terraforming Mars"
	case GameDune:
		return "Dune"
	case GameDungeonsDragons:
		return "Dungeons & Dragons"
	case GameExplodingKittens:
		return "Exploding Kittens"
	default:
		return string(gt)
	}
}

// PlayerCount returns the seat count the server expects for the game.
func (gt GameType) PlayerCount() int {
	switch gt {
	case GameBrassBirmingham, GameGloomhaven:
		return 4
	case GameTerraformingMars, GameExplodingKittens:
		return 5
	case GameDune, GameDungeonsDragons:
		return 6
	default:
		return 4
	}
}

// CharacterOption is a selectable character/faction for the setup form.
type CharacterOption struct {
	Value string
	Label string
}

// CharacterOptions returns the character catalog for the game.
func (gt GameType) CharacterOptions() []CharacterOption {
	switch gt {
	case GameGloomhaven:
		return []CharacterOption{
			{Value: "brute", Label: "Brute"},
			{Value: "tinkerer", Label: "Tinkerer"},
			{Value: "spellweaver", Label: "Spellweaver"},
			{Value: "scoundrel", Label: "Scoundrel"},
			{Value: "ranger", Label: "Ranger"},
		}
	case GameTerraformingMars:
		return []CharacterOption{
			{Value: "Credicor", Label: "Credicor"},
			{Value: "Ecoline", Label: "Ecoline"},
			{Value: "Helion", Label: "Helion"},
			{Value: "Mining Guild", Label: "Mining Guild"},
			{Value: "Tharsis Republic", Label: "Tharsis Republic"},
		}
	case GameDune:
		return []CharacterOption{
			{Value: "atreides", Label: "House Atreides"},
			{Value: "harkonnen", Label: "House Harkonnen"},
			{Value: "emperor", Label: "Emperor"},
			{Value: "guild", Label: "Spacing Guild"},
			{Value: "bene_gesserit", Label: "Bene Gesserit"},
			{Value: "fremen", Label: "Fremen"},
		}
	case GameDungeonsDragons:
		return []CharacterOption{
			{Value: "dungeon_master", Label: "Dungeon Master"},
			{Value: "fighter", Label: "Fighter"},
			{Value: "wizard", Label: "Wizard"},
			{Value: "rogue", Label: "Rogue"},
			{Value: "cleric", Label: "Cleric"},
			{Value: "ranger", Label: "Ranger"},
		}
	case GameBrassBirmingham:
		return []CharacterOption{{Value: "default", Label: "Industrialist"}}
	default:
		return []CharacterOption{{Value: "default", Label: "Player"}}
	}
}
