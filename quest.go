// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import "fmt"

// MissionCode is the discriminant of a quest mission.
type MissionCode uint8

const (
	MissionNone          MissionCode = 0
	MissionLevel         MissionCode = 1
	MissionPrimarySkills MissionCode = 2
	MissionKillHero      MissionCode = 3
	MissionKillCreature  MissionCode = 4
	MissionArtifacts     MissionCode = 5
	MissionArmy          MissionCode = 6
	MissionResources     MissionCode = 7
	MissionHero          MissionCode = 8
	MissionPlayer        MissionCode = 9
)

var missionNames = [...]string{
	"none", "level", "primary_skills", "kill_hero", "kill_creature",
	"artifacts", "army", "resources", "hero", "player",
}

func (c MissionCode) String() string {
	if int(c) < len(missionNames) {
		return missionNames[c]
	}
	return fmt.Sprintf("mission(%d)", uint8(c))
}

// Quest is the task a seer hut or quest guard asks for. A quest whose
// mission is NoMission carries no deadline or texts.
type Quest struct {
	Mission   Mission `json:"mission"`
	Deadline  uint32  `json:"deadline"` // last day, 0xFFFFFFFF for none
	FirstText string  `json:"first_text"`
	NextText  string  `json:"next_text"`
	DoneText  string  `json:"done_text"`
}

// Mission is one of the mission types below.
type Mission interface {
	MissionCode() MissionCode
}

type (
	NoMission struct{}

	ReachLevel struct {
		Level uint32 `json:"level"`
	}

	ReachPrimarySkills struct {
		Skills PrimarySkills `json:"skills"`
	}

	KillHero struct {
		Target uint32 `json:"target"` // object id of the hero
	}

	KillCreature struct {
		Target uint32 `json:"target"` // object id of the monster
	}

	ReturnArtifacts struct {
		Artifacts []uint16 `json:"artifacts"`
	}

	ReturnArmy struct {
		Creatures []CreatureStack `json:"creatures"`
	}

	ReturnResources struct {
		Resources Resources `json:"resources"`
	}

	BeHero struct {
		Hero uint8 `json:"hero"`
	}

	BePlayer struct {
		Player uint8 `json:"player"`
	}

	// UnknownMission is a mission code outside the documented set. It
	// carries no payload of its own; the deadline and texts still follow.
	UnknownMission struct {
		Code MissionCode `json:"code"`
	}
)

func (NoMission) MissionCode() MissionCode          { return MissionNone }
func (ReachLevel) MissionCode() MissionCode         { return MissionLevel }
func (ReachPrimarySkills) MissionCode() MissionCode { return MissionPrimarySkills }
func (KillHero) MissionCode() MissionCode           { return MissionKillHero }
func (KillCreature) MissionCode() MissionCode       { return MissionKillCreature }
func (ReturnArtifacts) MissionCode() MissionCode    { return MissionArtifacts }
func (ReturnArmy) MissionCode() MissionCode         { return MissionArmy }
func (ReturnResources) MissionCode() MissionCode    { return MissionResources }
func (BeHero) MissionCode() MissionCode             { return MissionHero }
func (BePlayer) MissionCode() MissionCode           { return MissionPlayer }
func (m UnknownMission) MissionCode() MissionCode   { return m.Code }

// RewardCode is the discriminant of a seer hut reward.
type RewardCode uint8

const (
	RewardNothing      RewardCode = 0
	RewardExperience   RewardCode = 1
	RewardMana         RewardCode = 2
	RewardMorale       RewardCode = 3
	RewardLuck         RewardCode = 4
	RewardResources    RewardCode = 5
	RewardPrimarySkill RewardCode = 6
	RewardAbility      RewardCode = 7
	RewardArtifact     RewardCode = 8
	RewardSpell        RewardCode = 9
	RewardCreature     RewardCode = 10
)

var rewardNames = [...]string{
	"nothing", "experience", "mana", "morale", "luck", "resources",
	"primary_skill", "ability", "artifact", "spell", "creature",
}

func (c RewardCode) String() string {
	if int(c) < len(rewardNames) {
		return rewardNames[c]
	}
	return fmt.Sprintf("reward(%d)", uint8(c))
}

// Reward is one of the reward types below.
type Reward interface {
	RewardCode() RewardCode
}

type (
	NoReward struct{}

	ExperienceReward struct {
		Amount uint32 `json:"amount"`
	}

	ManaReward struct {
		Amount uint32 `json:"amount"`
	}

	MoraleReward struct {
		Bonus uint8 `json:"bonus"`
	}

	LuckReward struct {
		Bonus uint8 `json:"bonus"`
	}

	ResourceReward struct {
		Resource uint8  `json:"resource"`
		Amount   uint32 `json:"amount"`
	}

	PrimarySkillReward struct {
		Skill uint8 `json:"skill"`
		Bonus uint8 `json:"bonus"`
	}

	AbilityReward struct {
		Ability uint8 `json:"ability"`
		Level   uint8 `json:"level"`
	}

	ArtifactReward struct {
		Artifact uint16 `json:"artifact"`
	}

	SpellReward struct {
		Spell uint8 `json:"spell"`
	}

	CreatureReward struct {
		Creature uint16 `json:"creature"`
		Count    uint16 `json:"count"`
	}

	// UnknownReward is a reward code outside the documented set; it
	// carries no payload.
	UnknownReward struct {
		Code RewardCode `json:"code"`
	}
)

func (NoReward) RewardCode() RewardCode           { return RewardNothing }
func (ExperienceReward) RewardCode() RewardCode   { return RewardExperience }
func (ManaReward) RewardCode() RewardCode         { return RewardMana }
func (MoraleReward) RewardCode() RewardCode       { return RewardMorale }
func (LuckReward) RewardCode() RewardCode         { return RewardLuck }
func (ResourceReward) RewardCode() RewardCode     { return RewardResources }
func (PrimarySkillReward) RewardCode() RewardCode { return RewardPrimarySkill }
func (AbilityReward) RewardCode() RewardCode      { return RewardAbility }
func (ArtifactReward) RewardCode() RewardCode     { return RewardArtifact }
func (SpellReward) RewardCode() RewardCode        { return RewardSpell }
func (CreatureReward) RewardCode() RewardCode     { return RewardCreature }
func (r UnknownReward) RewardCode() RewardCode    { return r.Code }
