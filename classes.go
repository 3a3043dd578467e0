// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import "strconv"

// ObjectClass is the class id of an object template. Classes outside the
// named set are valid: they decode with an empty payload.
type ObjectClass uint32

// Object classes with a gameplay payload, plus the common decorative and
// visitable ones so documents print names instead of numbers.
const (
	ClassAltarOfSacrifice          ObjectClass = 2
	ClassAnchorPoint               ObjectClass = 3
	ClassArena                     ObjectClass = 4
	ClassArtifact                  ObjectClass = 5
	ClassPandorasBox               ObjectClass = 6
	ClassBlackMarket               ObjectClass = 7
	ClassBoat                      ObjectClass = 8
	ClassBorderGuard               ObjectClass = 9
	ClassKeymaster                 ObjectClass = 10
	ClassBuoy                      ObjectClass = 11
	ClassCampfire                  ObjectClass = 12
	ClassCartographer              ObjectClass = 13
	ClassSwanPond                  ObjectClass = 14
	ClassCoverOfDarkness           ObjectClass = 15
	ClassCreatureBank              ObjectClass = 16
	ClassCreatureGenerator1        ObjectClass = 17
	ClassCreatureGenerator2        ObjectClass = 18
	ClassCreatureGenerator3        ObjectClass = 19
	ClassCreatureGenerator4        ObjectClass = 20
	ClassCursedGround1             ObjectClass = 21
	ClassCorpse                    ObjectClass = 22
	ClassMarlettoTower             ObjectClass = 23
	ClassDerelictShip              ObjectClass = 24
	ClassDragonUtopia              ObjectClass = 25
	ClassEvent                     ObjectClass = 26
	ClassEyeOfMagi                 ObjectClass = 27
	ClassFaerieRing                ObjectClass = 28
	ClassFlotsam                   ObjectClass = 29
	ClassFountainOfFortune         ObjectClass = 30
	ClassFountainOfYouth           ObjectClass = 31
	ClassGardenOfRevelation        ObjectClass = 32
	ClassGarrison                  ObjectClass = 33
	ClassHero                      ObjectClass = 34
	ClassHillFort                  ObjectClass = 35
	ClassGrail                     ObjectClass = 36
	ClassHutOfMagi                 ObjectClass = 37
	ClassIdolOfFortune             ObjectClass = 38
	ClassLeanTo                    ObjectClass = 39
	ClassLibraryOfEnlightenment    ObjectClass = 41
	ClassLighthouse                ObjectClass = 42
	ClassMonolithOneWayEntrance    ObjectClass = 43
	ClassMonolithOneWayExit        ObjectClass = 44
	ClassMonolithTwoWay            ObjectClass = 45
	ClassSchoolOfMagic             ObjectClass = 47
	ClassMagicSpring               ObjectClass = 48
	ClassMagicWell                 ObjectClass = 49
	ClassMercenaryCamp             ObjectClass = 51
	ClassMermaid                   ObjectClass = 52
	ClassMine                      ObjectClass = 53
	ClassMonster                   ObjectClass = 54
	ClassMysticalGarden            ObjectClass = 55
	ClassOasis                     ObjectClass = 56
	ClassObelisk                   ObjectClass = 57
	ClassRedwoodObservatory        ObjectClass = 58
	ClassOceanBottle               ObjectClass = 59
	ClassPillarOfFire              ObjectClass = 60
	ClassStarAxis                  ObjectClass = 61
	ClassPrison                    ObjectClass = 62
	ClassPyramid                   ObjectClass = 63
	ClassRallyFlag                 ObjectClass = 64
	ClassRandomArtifact            ObjectClass = 65
	ClassRandomTreasureArtifact    ObjectClass = 66
	ClassRandomMinorArtifact       ObjectClass = 67
	ClassRandomMajorArtifact       ObjectClass = 68
	ClassRandomRelicArtifact       ObjectClass = 69
	ClassRandomHero                ObjectClass = 70
	ClassRandomMonster             ObjectClass = 71
	ClassRandomMonsterL1           ObjectClass = 72
	ClassRandomMonsterL2           ObjectClass = 73
	ClassRandomMonsterL3           ObjectClass = 74
	ClassRandomMonsterL4           ObjectClass = 75
	ClassRandomResource            ObjectClass = 76
	ClassRandomTown                ObjectClass = 77
	ClassRefugeeCamp               ObjectClass = 78
	ClassResource                  ObjectClass = 79
	ClassSanctuary                 ObjectClass = 80
	ClassScholar                   ObjectClass = 81
	ClassSeaChest                  ObjectClass = 82
	ClassSeerHut                   ObjectClass = 83
	ClassCrypt                     ObjectClass = 84
	ClassShipwreck                 ObjectClass = 85
	ClassShipwreckSurvivor         ObjectClass = 86
	ClassShipyard                  ObjectClass = 87
	ClassShrineOfMagicIncantation  ObjectClass = 88
	ClassShrineOfMagicGesture      ObjectClass = 89
	ClassShrineOfMagicThought      ObjectClass = 90
	ClassSign                      ObjectClass = 91
	ClassSirens                    ObjectClass = 92
	ClassSpellScroll               ObjectClass = 93
	ClassStables                   ObjectClass = 94
	ClassTavern                    ObjectClass = 95
	ClassTemple                    ObjectClass = 96
	ClassDenOfThieves              ObjectClass = 97
	ClassTown                      ObjectClass = 98
	ClassTradingPost               ObjectClass = 99
	ClassLearningStone             ObjectClass = 100
	ClassTreasureChest             ObjectClass = 101
	ClassTreeOfKnowledge           ObjectClass = 102
	ClassSubterraneanGate          ObjectClass = 103
	ClassUniversity                ObjectClass = 104
	ClassWagon                     ObjectClass = 105
	ClassWarMachineFactory         ObjectClass = 106
	ClassSchoolOfWar               ObjectClass = 107
	ClassWarriorsTomb              ObjectClass = 108
	ClassWaterWheel                ObjectClass = 109
	ClassWateringHole              ObjectClass = 110
	ClassWhirlpool                 ObjectClass = 111
	ClassWindmill                  ObjectClass = 112
	ClassWitchHut                  ObjectClass = 113
	ClassRandomMonsterL5           ObjectClass = 162
	ClassRandomMonsterL6           ObjectClass = 163
	ClassRandomMonsterL7           ObjectClass = 164
	ClassBorderGate                ObjectClass = 212
	ClassFreelancersGuild          ObjectClass = 213
	ClassHeroPlaceholder           ObjectClass = 214
	ClassQuestGuard                ObjectClass = 215
	ClassRandomDwelling            ObjectClass = 216
	ClassRandomDwellingLevel       ObjectClass = 217
	ClassRandomDwellingFaction     ObjectClass = 218
	ClassGarrisonVertical          ObjectClass = 219
	ClassAbandonedMine             ObjectClass = 220
	ClassTradingPostSnow           ObjectClass = 221
)

var classNames = map[ObjectClass]string{
	ClassAltarOfSacrifice:         "altar_of_sacrifice",
	ClassAnchorPoint:              "anchor_point",
	ClassArena:                    "arena",
	ClassArtifact:                 "artifact",
	ClassPandorasBox:              "pandoras_box",
	ClassBlackMarket:              "black_market",
	ClassBoat:                     "boat",
	ClassBorderGuard:              "border_guard",
	ClassKeymaster:                "keymaster",
	ClassBuoy:                     "buoy",
	ClassCampfire:                 "campfire",
	ClassCartographer:             "cartographer",
	ClassSwanPond:                 "swan_pond",
	ClassCoverOfDarkness:          "cover_of_darkness",
	ClassCreatureBank:             "creature_bank",
	ClassCreatureGenerator1:       "creature_generator1",
	ClassCreatureGenerator2:       "creature_generator2",
	ClassCreatureGenerator3:       "creature_generator3",
	ClassCreatureGenerator4:       "creature_generator4",
	ClassCursedGround1:            "cursed_ground1",
	ClassCorpse:                   "corpse",
	ClassMarlettoTower:            "marletto_tower",
	ClassDerelictShip:             "derelict_ship",
	ClassDragonUtopia:             "dragon_utopia",
	ClassEvent:                    "event",
	ClassEyeOfMagi:                "eye_of_magi",
	ClassFaerieRing:               "faerie_ring",
	ClassFlotsam:                  "flotsam",
	ClassFountainOfFortune:        "fountain_of_fortune",
	ClassFountainOfYouth:          "fountain_of_youth",
	ClassGardenOfRevelation:       "garden_of_revelation",
	ClassGarrison:                 "garrison",
	ClassHero:                     "hero",
	ClassHillFort:                 "hill_fort",
	ClassGrail:                    "grail",
	ClassHutOfMagi:                "hut_of_magi",
	ClassIdolOfFortune:            "idol_of_fortune",
	ClassLeanTo:                   "lean_to",
	ClassLibraryOfEnlightenment:   "library_of_enlightenment",
	ClassLighthouse:               "lighthouse",
	ClassMonolithOneWayEntrance:   "monolith_one_way_entrance",
	ClassMonolithOneWayExit:       "monolith_one_way_exit",
	ClassMonolithTwoWay:           "monolith_two_way",
	ClassSchoolOfMagic:            "school_of_magic",
	ClassMagicSpring:              "magic_spring",
	ClassMagicWell:                "magic_well",
	ClassMercenaryCamp:            "mercenary_camp",
	ClassMermaid:                  "mermaid",
	ClassMine:                     "mine",
	ClassMonster:                  "monster",
	ClassMysticalGarden:           "mystical_garden",
	ClassOasis:                    "oasis",
	ClassObelisk:                  "obelisk",
	ClassRedwoodObservatory:       "redwood_observatory",
	ClassOceanBottle:              "ocean_bottle",
	ClassPillarOfFire:             "pillar_of_fire",
	ClassStarAxis:                 "star_axis",
	ClassPrison:                   "prison",
	ClassPyramid:                  "pyramid",
	ClassRallyFlag:                "rally_flag",
	ClassRandomArtifact:           "random_artifact",
	ClassRandomTreasureArtifact:   "random_treasure_artifact",
	ClassRandomMinorArtifact:      "random_minor_artifact",
	ClassRandomMajorArtifact:      "random_major_artifact",
	ClassRandomRelicArtifact:      "random_relic_artifact",
	ClassRandomHero:               "random_hero",
	ClassRandomMonster:            "random_monster",
	ClassRandomMonsterL1:          "random_monster_l1",
	ClassRandomMonsterL2:          "random_monster_l2",
	ClassRandomMonsterL3:          "random_monster_l3",
	ClassRandomMonsterL4:          "random_monster_l4",
	ClassRandomResource:           "random_resource",
	ClassRandomTown:               "random_town",
	ClassRefugeeCamp:              "refugee_camp",
	ClassResource:                 "resource",
	ClassSanctuary:                "sanctuary",
	ClassScholar:                  "scholar",
	ClassSeaChest:                 "sea_chest",
	ClassSeerHut:                  "seer_hut",
	ClassCrypt:                    "crypt",
	ClassShipwreck:                "shipwreck",
	ClassShipwreckSurvivor:        "shipwreck_survivor",
	ClassShipyard:                 "shipyard",
	ClassShrineOfMagicIncantation: "shrine_of_magic_incantation",
	ClassShrineOfMagicGesture:     "shrine_of_magic_gesture",
	ClassShrineOfMagicThought:     "shrine_of_magic_thought",
	ClassSign:                     "sign",
	ClassSirens:                   "sirens",
	ClassSpellScroll:              "spell_scroll",
	ClassStables:                  "stables",
	ClassTavern:                   "tavern",
	ClassTemple:                   "temple",
	ClassDenOfThieves:             "den_of_thieves",
	ClassTown:                     "town",
	ClassTradingPost:              "trading_post",
	ClassLearningStone:            "learning_stone",
	ClassTreasureChest:            "treasure_chest",
	ClassTreeOfKnowledge:          "tree_of_knowledge",
	ClassSubterraneanGate:         "subterranean_gate",
	ClassUniversity:               "university",
	ClassWagon:                    "wagon",
	ClassWarMachineFactory:        "war_machine_factory",
	ClassSchoolOfWar:              "school_of_war",
	ClassWarriorsTomb:             "warriors_tomb",
	ClassWaterWheel:               "water_wheel",
	ClassWateringHole:             "watering_hole",
	ClassWhirlpool:                "whirlpool",
	ClassWindmill:                 "windmill",
	ClassWitchHut:                 "witch_hut",
	ClassRandomMonsterL5:          "random_monster_l5",
	ClassRandomMonsterL6:          "random_monster_l6",
	ClassRandomMonsterL7:          "random_monster_l7",
	ClassBorderGate:               "border_gate",
	ClassFreelancersGuild:         "freelancers_guild",
	ClassHeroPlaceholder:          "hero_placeholder",
	ClassQuestGuard:               "quest_guard",
	ClassRandomDwelling:           "random_dwelling",
	ClassRandomDwellingLevel:      "random_dwelling_level",
	ClassRandomDwellingFaction:    "random_dwelling_faction",
	ClassGarrisonVertical:         "garrison_vertical",
	ClassAbandonedMine:            "abandoned_mine",
	ClassTradingPostSnow:          "trading_post_snow",
}

// Known reports whether the class has a name in this package.
func (c ObjectClass) Known() bool {
	_, ok := classNames[c]
	return ok
}

// String returns the class name, or the decimal id for unnamed classes.
func (c ObjectClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}
