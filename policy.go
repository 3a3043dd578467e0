// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

// Field presence and width rules per format version. The decoders ask
// these questions instead of comparing versions inline, so a new version
// only needs new answers here.

// HasHeroLevelLimit reports whether the header carries a hero level cap.
func (v Version) HasHeroLevelLimit() bool { return v >= VersionAB }

// DisabledPlayerSpan is the number of reserved bytes a player slot that
// neither a human nor the computer may play still occupies.
func (v Version) DisabledPlayerSpan() int {
	switch {
	case v >= VersionSoD:
		return 13
	case v == VersionAB:
		return 12
	default:
		return 6
	}
}

// HasFactionsConfigured reports whether player slots carry the
// "are factions configured" byte.
func (v Version) HasFactionsConfigured() bool { return v >= VersionSoD }

// AllowedFactionsWidth is the byte width of the allowed faction bitmask.
func (v Version) AllowedFactionsWidth() int {
	if v == VersionRoE {
		return 1
	}
	return 2
}

// HasMainTownHeroFlags reports whether a main town stores its two hero
// generation flags. Older maps imply "generate at town, no extra hero".
func (v Version) HasMainTownHeroFlags() bool { return v >= VersionAB }

// HasPlayerHeroList reports whether player slots list their custom heroes.
func (v Version) HasPlayerHeroList() bool { return v >= VersionAB }

// HasVictoryReservedByte reports whether artifact and creature victory
// conditions pad their id with an extra byte.
func (v Version) HasVictoryReservedByte() bool { return v >= VersionAB }

// AllowedHeroesSpan is the size of the allowed heroes bitmap.
func (v Version) AllowedHeroesSpan() int {
	if v == VersionRoE {
		return 16
	}
	return 20
}

// HasPlaceholderHeroes reports whether the placeholder hero list follows
// the allowed heroes bitmap.
func (v Version) HasPlaceholderHeroes() bool { return v >= VersionAB }

// HasConfiguredHeroes reports whether the disposed hero list follows.
func (v Version) HasConfiguredHeroes() bool { return v >= VersionSoD }

// AllowedArtifactsSpan is the size of the allowed artifacts bitmap, zero
// when the section is absent.
func (v Version) AllowedArtifactsSpan() int {
	switch {
	case v >= VersionSoD:
		return 18
	case v == VersionAB:
		return 17
	default:
		return 0
	}
}

// HasAllowedSpells reports whether the allowed spells bitmap is present.
func (v Version) HasAllowedSpells() bool { return v >= VersionSoD }

// HasAllowedAbilities reports whether the allowed abilities bitmap is present.
func (v Version) HasAllowedAbilities() bool { return v >= VersionSoD }

// HasPredefinedHeroes reports whether the predefined hero table is present.
func (v Version) HasPredefinedHeroes() bool { return v >= VersionSoD }

// HasCatapultSlot reports whether hero equipment stores a catapult slot.
func (v Version) HasCatapultSlot() bool { return v >= VersionSoD }

// ArtifactIDWidth is the byte width of an artifact id.
func (v Version) ArtifactIDWidth() int {
	if v == VersionRoE {
		return 1
	}
	return 2
}

// ArtifactSentinel is the artifact id meaning "slot empty".
func (v Version) ArtifactSentinel() uint16 {
	if v == VersionRoE {
		return 0xFF
	}
	return 0xFFFF
}

// CreatureIDWidth is the byte width of a creature id in an army slot.
func (v Version) CreatureIDWidth() int {
	if v == VersionRoE {
		return 1
	}
	return 2
}

// CreatureSentinel is the creature id meaning "slot empty".
func (v Version) CreatureSentinel() uint16 {
	if v == VersionRoE {
		return 0xFF
	}
	return 0xFFFF
}

// HasObjectID reports whether heroes, towns and monsters carry a
// 4-byte identifier.
func (v Version) HasObjectID() bool { return v >= VersionAB }

// HasExperienceFlag reports whether hero experience is optional.
// Older maps always store it.
func (v Version) HasExperienceFlag() bool { return v >= VersionSoD }

// HasHeroBiography reports whether heroes carry biography and sex fields.
func (v Version) HasHeroBiography() bool { return v >= VersionAB }

// HeroSpellsLayout describes how a placed hero stores custom spells:
// 0 for absent, 1 for a single byte, 9 for an optional full bitmap.
func (v Version) HeroSpellsLayout() int {
	switch {
	case v >= VersionSoD:
		return spellBitmapSize
	case v == VersionAB:
		return 1
	default:
		return 0
	}
}

// HasCustomPrimarySkills reports whether heroes may override primary skills.
func (v Version) HasCustomPrimarySkills() bool { return v >= VersionSoD }

// HasObligatorySpells reports whether towns list obligatory spells.
func (v Version) HasObligatorySpells() bool { return v >= VersionAB }

// HasHumanAffected reports whether timed events store the human flag.
func (v Version) HasHumanAffected() bool { return v >= VersionSoD }

// HasTownAlignment reports whether random towns store an alignment byte.
func (v Version) HasTownAlignment() bool { return v >= VersionSoD }

// HasQuests reports whether seer huts use the full quest record. RoE huts
// only ask for a single artifact.
func (v Version) HasQuests() bool { return v >= VersionAB }

// HasWitchHutAbilities reports whether witch huts store allowed abilities.
func (v Version) HasWitchHutAbilities() bool { return v >= VersionAB }

// HasRemovableGarrison reports whether garrisons store the removable flag.
func (v Version) HasRemovableGarrison() bool { return v >= VersionAB }
