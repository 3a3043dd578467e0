// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import "fmt"

// VictoryCode is the discriminant of a victory condition.
type VictoryCode uint8

const (
	VictoryArtifact          VictoryCode = 0
	VictoryCreatures         VictoryCode = 1
	VictoryResources         VictoryCode = 2
	VictoryUpgradeTown       VictoryCode = 3
	VictoryBuildGrail        VictoryCode = 4
	VictoryDefeatHero        VictoryCode = 5
	VictoryCaptureTown       VictoryCode = 6
	VictoryDefeatMonster     VictoryCode = 7
	VictoryFlagDwellings     VictoryCode = 8
	VictoryFlagMines         VictoryCode = 9
	VictoryTransportArtifact VictoryCode = 10
	VictoryStandard          VictoryCode = 0xFF
)

// VictoryCondition is one of the victory condition types below.
type VictoryCondition interface {
	VictoryCode() VictoryCode
}

// SpecialVictory holds the flags every non-standard victory carries.
type SpecialVictory struct {
	StandardAllowed   bool `json:"standard_allowed"`
	AppliesToComputer bool `json:"applies_to_computer"`
}

type (
	// StandardVictory means "defeat all enemies".
	StandardVictory struct{}

	AcquireArtifact struct {
		SpecialVictory
		Artifact uint8 `json:"artifact"`
	}

	AccumulateCreatures struct {
		SpecialVictory
		Creature uint8  `json:"creature"`
		Amount   uint32 `json:"amount"`
	}

	AccumulateResources struct {
		SpecialVictory
		Resource uint8  `json:"resource"`
		Amount   uint32 `json:"amount"`
	}

	UpgradeTown struct {
		SpecialVictory
		Town        Coord `json:"town"`
		HallLevel   uint8 `json:"hall_level"`
		CastleLevel uint8 `json:"castle_level"`
	}

	BuildGrail struct {
		SpecialVictory
		Town Coord `json:"town"`
	}

	DefeatHero struct {
		SpecialVictory
		Hero Coord `json:"hero"`
	}

	CaptureTown struct {
		SpecialVictory
		Town Coord `json:"town"`
	}

	DefeatMonster struct {
		SpecialVictory
		Monster Coord `json:"monster"`
	}

	FlagDwellings struct{ SpecialVictory }

	FlagMines struct{ SpecialVictory }

	TransportArtifact struct {
		SpecialVictory
		Artifact uint8 `json:"artifact"`
		Town     Coord `json:"town"`
	}
)

func (StandardVictory) VictoryCode() VictoryCode     { return VictoryStandard }
func (AcquireArtifact) VictoryCode() VictoryCode     { return VictoryArtifact }
func (AccumulateCreatures) VictoryCode() VictoryCode { return VictoryCreatures }
func (AccumulateResources) VictoryCode() VictoryCode { return VictoryResources }
func (UpgradeTown) VictoryCode() VictoryCode         { return VictoryUpgradeTown }
func (BuildGrail) VictoryCode() VictoryCode          { return VictoryBuildGrail }
func (DefeatHero) VictoryCode() VictoryCode          { return VictoryDefeatHero }
func (CaptureTown) VictoryCode() VictoryCode         { return VictoryCaptureTown }
func (DefeatMonster) VictoryCode() VictoryCode       { return VictoryDefeatMonster }
func (FlagDwellings) VictoryCode() VictoryCode       { return VictoryFlagDwellings }
func (FlagMines) VictoryCode() VictoryCode           { return VictoryFlagMines }
func (TransportArtifact) VictoryCode() VictoryCode   { return VictoryTransportArtifact }

// LossCode is the discriminant of a loss condition.
type LossCode uint8

const (
	LossTown     LossCode = 0
	LossHero     LossCode = 1
	LossTime     LossCode = 2
	LossStandard LossCode = 0xFF
)

// LossCondition is one of the loss condition types below.
type LossCondition interface {
	LossCode() LossCode
}

type (
	// StandardLoss means "lose all towns and heroes".
	StandardLoss struct{}

	LoseTown struct {
		Town Coord `json:"town"`
	}

	LoseHero struct {
		Hero Coord `json:"hero"`
	}

	TimeExpires struct {
		Days uint16 `json:"days"`
	}
)

func (StandardLoss) LossCode() LossCode { return LossStandard }
func (LoseTown) LossCode() LossCode     { return LossTown }
func (LoseHero) LossCode() LossCode     { return LossHero }
func (TimeExpires) LossCode() LossCode  { return LossTime }

var victoryNames = map[VictoryCode]string{
	VictoryArtifact:          "acquire_artifact",
	VictoryCreatures:         "accumulate_creatures",
	VictoryResources:         "accumulate_resources",
	VictoryUpgradeTown:       "upgrade_town",
	VictoryBuildGrail:        "build_grail",
	VictoryDefeatHero:        "defeat_hero",
	VictoryCaptureTown:       "capture_town",
	VictoryDefeatMonster:     "defeat_monster",
	VictoryFlagDwellings:     "flag_dwellings",
	VictoryFlagMines:         "flag_mines",
	VictoryTransportArtifact: "transport_artifact",
	VictoryStandard:          "standard",
}

func (c VictoryCode) String() string {
	if name, ok := victoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("victory(%d)", uint8(c))
}

var lossNames = map[LossCode]string{
	LossTown:     "lose_town",
	LossHero:     "lose_hero",
	LossTime:     "time_expires",
	LossStandard: "standard",
}

func (c LossCode) String() string {
	if name, ok := lossNames[c]; ok {
		return name
	}
	return fmt.Sprintf("loss(%d)", uint8(c))
}
