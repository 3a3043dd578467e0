// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import "fmt"

// Version is one of the three map format variants. Versions are totally
// ordered: each one carries every structural field of the previous one.
type Version uint8

const (
	// VersionRoE is the original format ("Restoration of Erathia").
	VersionRoE Version = iota + 1

	// VersionAB adds object ids, custom player heroes and quests
	// ("Armageddon's Blade").
	VersionAB

	// VersionSoD adds predefined heroes, allowed spells/abilities and the
	// catapult slot ("Shadow of Death").
	VersionSoD
)

// Format tags as stored in the first four bytes of a map
const (
	tagRoE = 0x0E
	tagAB  = 0x15
	tagSoD = 0x1C
)

// Layout constants
const (
	playerCount          = 8   // fixed player colour slots
	resourceCount        = 7   // wood, mercury, ore, sulfur, crystal, gems, gold
	armySlots            = 7   // creature slots in a hero/town/guard army
	predefinedHeroCount  = 156 // hero table size on SoD maps
	bodySlotCount        = 16  // equipped artifact slots before the war machines
	primarySkillCount    = 4   // attack, defense, power, knowledge
	spellBitmapSize      = 9   // 70 spells, one bit each
	buildingBitmapSize   = 6   // town buildings, one bit each
	passabilityMaskSize  = 6   // 8x6 template footprint, one bit per tile
	templateReservedSize = 16  // trailing bytes of each template entry
	objectReservedSize   = 5   // bytes between template index and payload
	eventReservedSize    = 17  // trailing bytes of each timed event
	abilityBitmapSize    = 4   // 28 secondary skills, one bit each
	heroesReservedSize   = 31  // bytes following the hero availability block

	noHero   = 0xFF // "no custom hero" marker in player slots and placeholders
	noObject = 0xFF // "no artifact" marker in RoE seer huts
)

// Artifact slot numbers for hero equipment
const (
	SlotCatapult  = 16
	SlotSpellbook = 17
	SlotMisc5     = 18
	SlotBackpack  = 19 // first backpack slot; the backpack is open-ended
)

// ParseVersion maps a format tag to its Version.
func ParseVersion(tag uint32) (Version, bool) {
	switch tag {
	case tagRoE:
		return VersionRoE, true
	case tagAB:
		return VersionAB, true
	case tagSoD:
		return VersionSoD, true
	default:
		return 0, false
	}
}

// Tag returns the on-disk format tag.
func (v Version) Tag() uint32 {
	switch v {
	case VersionRoE:
		return tagRoE
	case VersionAB:
		return tagAB
	case VersionSoD:
		return tagSoD
	default:
		return 0
	}
}

func (v Version) String() string {
	switch v {
	case VersionRoE:
		return "RoE"
	case VersionAB:
		return "AB"
	case VersionSoD:
		return "SoD"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// MarshalText encodes the version by name so exported documents stay
// readable.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (v *Version) UnmarshalText(text []byte) error {
	switch string(text) {
	case "RoE":
		*v = VersionRoE
	case "AB":
		*v = VersionAB
	case "SoD":
		*v = VersionSoD
	default:
		return fmt.Errorf("unknown format version %q", text)
	}
	return nil
}
