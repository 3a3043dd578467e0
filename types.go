// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

// Map is a decoded map document. Every field is written once, in file
// order, during a single traversal.
type Map struct {
	Header           Header             `json:"header"`
	Players          []PlayerAttributes `json:"players"`
	Victory          VictoryCondition   `json:"victory"`
	Loss             LossCondition      `json:"loss"`
	Teams            *Teams             `json:"teams,omitempty"`
	Heroes           HeroAvailability   `json:"heroes"`
	AllowedArtifacts []byte             `json:"allowed_artifacts,omitempty"`
	AllowedSpells    []byte             `json:"allowed_spells,omitempty"`
	AllowedAbilities []byte             `json:"allowed_abilities,omitempty"`
	Rumors           []Rumor            `json:"rumors"`
	PredefinedHeroes []PredefinedHero   `json:"predefined_heroes,omitempty"`
	Terrain          Terrain            `json:"terrain"`
	Templates        []ObjectTemplate   `json:"templates"`
	Objects          []MapObject        `json:"objects"`
	Events           []TimedEvent       `json:"events"`

	// Trailer holds whatever follows the global events, usually zero
	// padding. It is kept so mirrored output stays byte-identical.
	Trailer []byte `json:"trailer,omitempty"`
}

// Coord is a tile position; Z is 0 for the surface, 1 for underground.
type Coord struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
	Z uint8 `json:"z"`
}

// Header is the map's leading section.
type Header struct {
	Version        Version `json:"version"`
	HasPlayers     bool    `json:"has_players"`
	Size           uint32  `json:"size"` // width and height; maps are square
	HasUnderground bool    `json:"has_underground"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Difficulty     uint8   `json:"difficulty"`
	HeroLevelLimit *uint8  `json:"hero_level_limit,omitempty"`
}

// PlayerColor indexes the eight fixed player slots.
type PlayerColor uint8

const (
	Red PlayerColor = iota
	Blue
	Tan
	Green
	Orange
	Purple
	Teal
	Pink
)

var playerColorNames = [playerCount]string{"red", "blue", "tan", "green", "orange", "purple", "teal", "pink"}

func (p PlayerColor) String() string {
	if int(p) < len(playerColorNames) {
		return playerColorNames[p]
	}
	return "neutral"
}

// MarshalText encodes the colour by name.
func (p PlayerColor) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// PlayerAttributes describes one player slot. A slot nobody may play
// only carries the two capability flags.
type PlayerAttributes struct {
	Color              PlayerColor  `json:"color"`
	CanHumanPlay       bool         `json:"can_human_play"`
	CanComputerPlay    bool         `json:"can_computer_play"`
	ComputerBehavior   uint8        `json:"computer_behavior,omitempty"`
	FactionsConfigured *uint8       `json:"factions_configured,omitempty"`
	AllowedFactions    uint16       `json:"allowed_factions,omitempty"`
	RandomFaction      bool         `json:"random_faction,omitempty"`
	MainTown           *MainTown    `json:"main_town,omitempty"`
	RandomHero         bool         `json:"random_hero,omitempty"`
	MainHero           *CustomHero  `json:"main_hero,omitempty"`
	Heroes             []PlayerHero `json:"heroes,omitempty"`
}

// Playable reports whether anyone may play the slot.
func (p *PlayerAttributes) Playable() bool {
	return p.CanHumanPlay || p.CanComputerPlay
}

// MainTown is the optional starting town of a player.
type MainTown struct {
	GenerateHeroAtTown bool  `json:"generate_hero_at_town"`
	GenerateHero       bool  `json:"generate_hero"`
	Position           Coord `json:"position"`
}

// CustomHero is a player's configured starting hero.
type CustomHero struct {
	ID       uint8  `json:"id"`
	Portrait uint8  `json:"portrait"`
	Name     string `json:"name"`
}

// PlayerHero is an entry of a player's hero list.
type PlayerHero struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}

// Teams assigns a team number to every player slot.
type Teams struct {
	Count      uint8              `json:"count"`
	Assignment [playerCount]uint8 `json:"assignment"`
}

// HeroAvailability is the allowed heroes bitmap and the lists that
// follow it.
type HeroAvailability struct {
	Allowed      []byte           `json:"allowed"`
	Placeholders []uint8          `json:"placeholders,omitempty"`
	Configured   []ConfiguredHero `json:"configured,omitempty"`
}

// ConfiguredHero overrides a hero's portrait, name and availability.
type ConfiguredHero struct {
	ID       uint8  `json:"id"`
	Portrait uint8  `json:"portrait"`
	Name     string `json:"name"`
	Players  uint8  `json:"players"` // bitmask of players that may hire
}

// Rumor is a tavern rumor.
type Rumor struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// PrimarySkills are attack, defense, spell power and knowledge.
type PrimarySkills struct {
	Attack    uint8 `json:"attack"`
	Defense   uint8 `json:"defense"`
	Power     uint8 `json:"power"`
	Knowledge uint8 `json:"knowledge"`
}

// Ability is a secondary skill at a level.
type Ability struct {
	ID    uint8 `json:"id"`
	Level uint8 `json:"level"`
}

// CreatureStack is one army slot.
type CreatureStack struct {
	ID    uint16 `json:"id"`
	Count uint16 `json:"count"`
}

// Resources holds one counter per resource kind in fixed order: wood,
// mercury, ore, sulfur, crystal, gems, gold.
type Resources [resourceCount]uint32

// ArtifactSet maps an equipment slot to an artifact id. Empty slots are
// absent. Slots 0-15 are the body, then SlotCatapult, SlotSpellbook,
// SlotMisc5 and the backpack from SlotBackpack on.
type ArtifactSet map[uint16]uint16

// PredefinedHero is an entry of the SoD hero customization table.
type PredefinedHero struct {
	ID            uint8          `json:"id"`
	Experience    *uint32        `json:"experience,omitempty"`
	Abilities     []Ability      `json:"abilities,omitempty"`
	Artifacts     ArtifactSet    `json:"artifacts,omitempty"`
	Biography     *string        `json:"biography,omitempty"`
	Sex           uint8          `json:"sex"`
	Spells        []byte         `json:"spells,omitempty"`
	PrimarySkills *PrimarySkills `json:"primary_skills,omitempty"`
}

// Tile is one terrain cell.
type Tile struct {
	Terrain   uint8 `json:"terrain"`
	View      uint8 `json:"view"`
	River     uint8 `json:"river"`
	RiverFlow uint8 `json:"river_flow"`
	Road      uint8 `json:"road"`
	RoadFlow  uint8 `json:"road_flow"`
	Flip      uint8 `json:"flip"`
}

// Terrain holds the surface level and, when the map has one, the
// underground level. Tiles are stored row by row.
type Terrain struct {
	Size        uint32 `json:"size"`
	Surface     []Tile `json:"surface"`
	Underground []Tile `json:"underground,omitempty"`
}

// At returns the tile at (x, y) on level z.
func (t *Terrain) At(x, y, z int) (Tile, bool) {
	level := t.Surface
	if z == 1 {
		level = t.Underground
	} else if z != 0 {
		return Tile{}, false
	}
	size := int(t.Size)
	if x < 0 || y < 0 || x >= size || y >= size {
		return Tile{}, false
	}
	index := y*size + x
	if index >= len(level) {
		return Tile{}, false
	}
	return level[index], true
}

// ObjectTemplate is an entry of the object template ("def") catalog.
type ObjectTemplate struct {
	Sprite         string                     `json:"sprite"`
	Blocked        [passabilityMaskSize]byte  `json:"blocked"`
	Visitable      [passabilityMaskSize]byte  `json:"visitable"`
	AllowedTerrain uint16                     `json:"allowed_terrain"`
	TerrainGroup   uint16                     `json:"terrain_group"`
	Class          ObjectClass                `json:"class"`
	Number         uint32                     `json:"number"`
	Group          uint8                      `json:"group"`
	Overlay        uint8                      `json:"overlay"`
	Reserved       [templateReservedSize]byte `json:"-"`
}

// MapObject is a placed object. Payload is one of the object variant
// types; classes without gameplay data decode to Opaque.
type MapObject struct {
	Position Coord         `json:"position"`
	Template uint32        `json:"template"`
	Class    ObjectClass   `json:"class"`
	Payload  ObjectPayload `json:"payload"`
}

// TimedEvent is a global or town event.
type TimedEvent struct {
	Name             string    `json:"name"`
	Message          string    `json:"message"`
	Resources        Resources `json:"resources"`
	Players          uint8     `json:"players"`
	HumanAffected    bool      `json:"human_affected"`
	ComputerAffected bool      `json:"computer_affected"`
	FirstOccurrence  uint16    `json:"first_occurrence"`
	Interval         uint8     `json:"interval"`
}

// TownEvent is a timed event that can also grant buildings and creatures.
type TownEvent struct {
	TimedEvent
	NewBuildings [buildingBitmapSize]byte `json:"new_buildings"`
	NewCreatures [armySlots]uint16        `json:"new_creatures"`
}
