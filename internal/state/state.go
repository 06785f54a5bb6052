package state

import (
	"bytes"
	"encoding/json"
)

// Snapshot is the full state of a session at a point in time. It is always
// replaced wholesale on update, never patched field by field; that is the
// single consistency mechanism guarding against partial-update corruption.
// Board sub-structures are game-type specific and nil for other games.
type Snapshot struct {
	GameID string `json:"game_id,omitempty"`
	// Seq increases monotonically on the server; stale writes are dropped.
	Seq int64 `json:"seq,omitempty"`

	Turn       int    `json:"turn"`
	TurnCount  int    `json:"turn_count,omitempty"`
	Round      int    `json:"round,omitempty"`
	Generation int    `json:"generation,omitempty"`
	Phase      string `json:"phase,omitempty"`

	CurrentPlayer *PlayerRef `json:"current_player,omitempty"`
	Players       []Player   `json:"players,omitempty"`

	Board            *Board            `json:"board,omitempty"`
	Scenario         *Scenario         `json:"scenario,omitempty"`
	Monsters         []Monster         `json:"monsters,omitempty"`
	GlobalParameters *GlobalParameters `json:"global_parameters,omitempty"`
	DeckRemaining    int               `json:"deck_remaining,omitempty"`
	DiscardPile      []json.RawMessage `json:"discard_pile,omitempty"`
	ExplodedPlayers  []int             `json:"exploded_players,omitempty"`

	GameOver bool `json:"game_over,omitempty"`
}

// PlayerRef identifies the current player inside a snapshot.
type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Player is one roster seat with its game-type-specific resource bag.
// Resources are display-only; the server owns the rules.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Class     string `json:"class,omitempty"`
	Faction   string `json:"faction,omitempty"`
	Role      string `json:"role,omitempty"`
	IsAI      bool   `json:"is_ai,omitempty"`

	// brass_birmingham
	Money  int `json:"money,omitempty"`
	Income int `json:"income,omitempty"`
	Score  int `json:"score,omitempty"`

	// gloomhaven / dungeons_dragons
	CurrentHP  int      `json:"current_hp,omitempty"`
	MaxHP      int      `json:"max_hp,omitempty"`
	Experience int      `json:"experience,omitempty"`
	AC         int      `json:"ac,omitempty"`
	Level      int      `json:"level,omitempty"`
	Position   *GridPos `json:"position,omitempty"`

	// terraforming_mars
	Corporation     string `json:"corporation,omitempty"`
	Megacredits     int    `json:"megacredits,omitempty"`
	TerraformRating int    `json:"terraform_rating,omitempty"`
	Steel           int    `json:"steel,omitempty"`
	Titanium        int    `json:"titanium,omitempty"`

	// dune
	Spice          int               `json:"spice,omitempty"`
	Forces         int               `json:"forces,omitempty"`
	TreacheryCards []json.RawMessage `json:"treachery_cards,omitempty"`

	// exploding_kittens; hand contents are opaque, only the count is shown
	Hand  []json.RawMessage `json:"hand,omitempty"`
	Alive bool              `json:"alive,omitempty"`
}

// GridPos is an [x, y] cell position encoded as a two-element JSON array.
type GridPos [2]int

// X returns the column component.
func (p GridPos) X() int { return p[0] }

// Y returns the row component.
func (p GridPos) Y() int { return p[1] }

// Board holds the map-style sub-structures used by city and territory games.
type Board struct {
	Cities        map[string]City      `json:"cities,omitempty"`
	CoalMarket    []json.RawMessage    `json:"coal_market,omitempty"`
	IronMarket    []json.RawMessage    `json:"iron_market,omitempty"`
	Territories   map[string]Territory `json:"territories,omitempty"`
	StormPosition int                  `json:"storm_position,omitempty"`
	Grid          [][]GridCell         `json:"grid,omitempty"`
}

// City is one node on a network-style board.
type City struct {
	Type        string     `json:"type,omitempty"`
	Connections []string   `json:"connections,omitempty"`
	Industries  []Industry `json:"industries,omitempty"`
}

// Industry is a built industry marker owned by a player.
type Industry struct {
	Player   int    `json:"player"`
	Industry string `json:"industry,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Territory is one region of a territory board.
type Territory struct {
	Type      string     `json:"type,omitempty"`
	Spice     int        `json:"spice,omitempty"`
	Occupants []Occupant `json:"occupants,omitempty"`
}

// Occupant is a force stack inside a territory.
type Occupant struct {
	PlayerID int `json:"player_id"`
	Forces   int `json:"forces"`
}

// GridCell is one square of a dungeon grid.
type GridCell struct {
	Terrain  string `json:"terrain,omitempty"`
	Occupant *int   `json:"occupant"`
}

// Scenario holds the room layout for tile-based dungeon games.
type Scenario struct {
	Name  string          `json:"name,omitempty"`
	Rooms map[string]Room `json:"rooms,omitempty"`
}

// Room is a set of floor tiles.
type Room struct {
	Tiles []GridPos `json:"tiles,omitempty"`
}

// Monster is a hostile token on a scenario map.
type Monster struct {
	Name     string   `json:"name,omitempty"`
	Position *GridPos `json:"position,omitempty"`
	HP       int      `json:"hp,omitempty"`
}

// GlobalParameters are the shared terraforming tracks.
type GlobalParameters struct {
	Temperature int `json:"temperature"`
	Oxygen      int `json:"oxygen"`
	Oceans      int `json:"oceans"`
}

// Clone returns a deep copy of the snapshot via a JSON round trip.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

// Equal reports whether two snapshots carry identical state by value.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	a, errA := json.Marshal(s)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}
