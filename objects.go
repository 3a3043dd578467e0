// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

// ObjectPayload is the class-specific data of a placed object. The
// concrete type is one of the variants below; the decoder picks it from
// the object's template class.
type ObjectPayload interface {
	payloadKind() string
}

// Guarded is the optional message and guard army shared by artifacts,
// resources, events and Pandora's boxes. Guards is nil when the object
// has no guard block and non-nil (possibly empty) when it has one.
type Guarded struct {
	Message *string         `json:"message,omitempty"`
	Guards  []CreatureStack `json:"guards,omitempty"`
}

// Contents is what a Pandora's box or an event hands out.
type Contents struct {
	Guarded
	Experience    uint32          `json:"experience"`
	Mana          uint32          `json:"mana"`
	Morale        uint8           `json:"morale"`
	Luck          uint8           `json:"luck"`
	Resources     Resources       `json:"resources"`
	PrimarySkills PrimarySkills   `json:"primary_skills"`
	Abilities     []Ability       `json:"abilities"`
	Artifacts     []uint16        `json:"artifacts"`
	Spells        []uint8         `json:"spells"`
	Creatures     []CreatureStack `json:"creatures"`
}

// Hero is a placed hero, random hero or prison. Optional fields are nil
// when the map leaves them at the hero type's defaults.
type Hero struct {
	ID            *uint32         `json:"id,omitempty"`
	Owner         uint8           `json:"owner"`
	Type          uint8           `json:"type"`
	Name          *string         `json:"name,omitempty"`
	Experience    *uint32         `json:"experience,omitempty"`
	Portrait      *uint8          `json:"portrait,omitempty"`
	Abilities     []Ability       `json:"abilities,omitempty"`
	Army          []CreatureStack `json:"army,omitempty"`
	Formation     uint8           `json:"formation"`
	Artifacts     ArtifactSet     `json:"artifacts,omitempty"`
	PatrolRadius  uint8           `json:"patrol_radius"`
	Biography     *string         `json:"biography,omitempty"`
	Sex           *uint8          `json:"sex,omitempty"`
	Spells        []byte          `json:"spells,omitempty"` // one byte on AB maps, a 9-byte bitmap on SoD
	PrimarySkills *PrimarySkills  `json:"primary_skills,omitempty"`
}

// Town is a placed town or random town.
type Town struct {
	ID               *uint32         `json:"id,omitempty"`
	Owner            uint8           `json:"owner"`
	Name             *string         `json:"name,omitempty"`
	Garrison         []CreatureStack `json:"garrison,omitempty"`
	Formation        uint8           `json:"formation"`
	Buildings        *TownBuildings  `json:"buildings,omitempty"`
	HasFort          *bool           `json:"has_fort,omitempty"` // set when Buildings is nil
	ObligatorySpells []byte          `json:"obligatory_spells,omitempty"`
	PossibleSpells   []byte          `json:"possible_spells"`
	Events           []TownEvent     `json:"events"`
	Alignment        *uint8          `json:"alignment,omitempty"`
}

// TownBuildings lists explicitly built and forbidden buildings.
type TownBuildings struct {
	Built     [buildingBitmapSize]byte `json:"built"`
	Forbidden [buildingBitmapSize]byte `json:"forbidden"`
}

type (
	// Opaque is the payload of classes without gameplay data. The
	// template alone describes such objects.
	Opaque struct{}

	Event struct {
		Contents
		AvailableFor     uint8 `json:"available_for"`
		ComputerActivate bool  `json:"computer_activate"`
		RemoveAfterVisit bool  `json:"remove_after_visit"`
	}

	// Sign is a sign post or an ocean bottle.
	Sign struct {
		Message string `json:"message"`
	}

	Monster struct {
		ID          *uint32    `json:"id,omitempty"`
		Count       uint16     `json:"count"`
		Disposition uint8      `json:"disposition"`
		Message     *string    `json:"message,omitempty"`
		Resources   *Resources `json:"resources,omitempty"`
		Artifact    *uint16    `json:"artifact,omitempty"`
		NeverFlees  bool       `json:"never_flees"`
		NotGrowing  bool       `json:"not_growing"`
	}

	SeerHut struct {
		Quest  Quest  `json:"quest"`
		Reward Reward `json:"reward,omitempty"`
	}

	WitchHut struct {
		Abilities []byte `json:"abilities,omitempty"`
	}

	Scholar struct {
		BonusType uint8 `json:"bonus_type"`
		BonusID   uint8 `json:"bonus_id"`
	}

	Garrison struct {
		Owner     uint8           `json:"owner"`
		Creatures []CreatureStack `json:"creatures"`
		Removable bool            `json:"removable"`
	}

	// ArtifactObject is a placed artifact, random artifact or spell
	// scroll. Artifact is the template number for concrete artifacts.
	ArtifactObject struct {
		Guarded
		Spell    *uint32 `json:"spell,omitempty"`
		Artifact *uint32 `json:"artifact,omitempty"`
	}

	ResourceObject struct {
		Guarded
		Quantity uint32 `json:"quantity"`
	}

	// Owned is a flaggable mine or creature generator.
	Owned struct {
		Owner uint8 `json:"owner"`
	}

	Shrine struct {
		Spell uint8 `json:"spell"`
	}

	PandorasBox struct {
		Contents
	}

	Grail struct {
		Radius uint32 `json:"radius"`
	}

	// RandomDwelling picks both faction and level at game start. Castles
	// is set when the dwelling is not linked to a town (CastleID == 0).
	RandomDwelling struct {
		Owner    uint32    `json:"owner"`
		CastleID uint32    `json:"castle_id"`
		Castles  *[2]uint8 `json:"castles,omitempty"`
		MinLevel uint8     `json:"min_level"`
		MaxLevel uint8     `json:"max_level"`
	}

	// RandomDwellingLevel has a fixed level and a random faction.
	RandomDwellingLevel struct {
		Owner    uint32    `json:"owner"`
		CastleID uint32    `json:"castle_id"`
		Castles  *[2]uint8 `json:"castles,omitempty"`
	}

	// RandomDwellingFaction has a fixed faction and a random level.
	RandomDwellingFaction struct {
		Owner    uint32 `json:"owner"`
		MinLevel uint8  `json:"min_level"`
		MaxLevel uint8  `json:"max_level"`
	}

	QuestGuard struct {
		Quest Quest `json:"quest"`
	}

	Shipyard struct {
		Owner uint32 `json:"owner"`
	}

	Lighthouse struct {
		Owner uint32 `json:"owner"`
	}

	// HeroPlaceholder marks where a campaign hero enters. Power is set
	// when HeroID is 0xFF, meaning "strongest hero of this power rank".
	HeroPlaceholder struct {
		Owner  uint8  `json:"owner"`
		HeroID uint8  `json:"hero_id"`
		Power  *uint8 `json:"power,omitempty"`
	}
)

func (Opaque) payloadKind() string                { return "opaque" }
func (Event) payloadKind() string                 { return "event" }
func (Sign) payloadKind() string                  { return "sign" }
func (Hero) payloadKind() string                  { return "hero" }
func (Monster) payloadKind() string               { return "monster" }
func (SeerHut) payloadKind() string               { return "seer_hut" }
func (WitchHut) payloadKind() string              { return "witch_hut" }
func (Scholar) payloadKind() string               { return "scholar" }
func (Garrison) payloadKind() string              { return "garrison" }
func (ArtifactObject) payloadKind() string        { return "artifact" }
func (ResourceObject) payloadKind() string        { return "resource" }
func (Town) payloadKind() string                  { return "town" }
func (Owned) payloadKind() string                 { return "owned" }
func (Shrine) payloadKind() string                { return "shrine" }
func (PandorasBox) payloadKind() string           { return "pandoras_box" }
func (Grail) payloadKind() string                 { return "grail" }
func (RandomDwelling) payloadKind() string        { return "random_dwelling" }
func (RandomDwellingLevel) payloadKind() string   { return "random_dwelling_level" }
func (RandomDwellingFaction) payloadKind() string { return "random_dwelling_faction" }
func (QuestGuard) payloadKind() string            { return "quest_guard" }
func (Shipyard) payloadKind() string              { return "shipyard" }
func (Lighthouse) payloadKind() string            { return "lighthouse" }
func (HeroPlaceholder) payloadKind() string       { return "hero_placeholder" }
