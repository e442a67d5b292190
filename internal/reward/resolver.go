// Package reward derives encounter numbers from a stage and an account's gear.
// Everything here is a pure function of its inputs; randomness is passed in.
package reward

import (
	"math"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// EncounterPreview summarises a stage before the player commits to it.
type EncounterPreview struct {
	Stage          int                 `json:"stage"`
	Special        bool                `json:"is_special"`
	Boss           bool                `json:"boss"`
	Monster        domain.MonsterStats `json:"monster"`
	Player         domain.PlayerStats  `json:"player"`
	ExpectedReward int64               `json:"expected_reward"`
	EstimatedTurns int                 `json:"estimated_turns"`
}

// IsBoss reports whether stage is a boss stage.
func IsBoss(stage int) bool {
	return stage > 0 && stage%BossInterval == 0
}

// Monster builds the monster for stage. Values truncate after every scaling step.
func Monster(stage int, special bool) domain.MonsterStats {
	t := Template(stage)
	hp := int(float64(stage*MonsterHPPerStage) * t.HPScale)
	atk := int(float64(stage*MonsterAtkPerStage) * t.AtkScale)

	boss := IsBoss(stage)
	if boss {
		hp = int(float64(hp) * BossHPFactor)
		atk = int(float64(atk) * BossAtkFactor)
	}
	if special {
		hp = int(float64(hp) * SpecialHPFactor)
		atk = int(float64(atk) * SpecialAtkFactor)
	}

	return domain.MonsterStats{
		Name:  t.Name,
		Emoji: t.Emoji,
		HP:    hp,
		MaxHP: hp,
		Atk:   atk,
		Boss:  boss,
	}
}

// WeaponMultiplier returns the attack multiplier for a sword level.
func WeaponMultiplier(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level >= len(WeaponMultipliers) {
		return WeaponMultipliers[len(WeaponMultipliers)-1]
	}
	return WeaponMultipliers[level]
}

// ArmorStats sums equipped pieces, scaled by their enhancement level, plus every
// set bonus whose part count is reached.
func ArmorStats(agg domain.EquipmentAggregate) domain.StatBlock {
	var total domain.StatBlock
	setCounts := make(map[string]int)

	for _, p := range agg.Pieces {
		mult := 1 + float64(p.Level)*ArmorStatPerLevel
		total.Atk += int(float64(p.Base.Atk) * mult)
		total.HP += int(float64(p.Base.HP) * mult)
		total.Def += int(float64(p.Base.Def) * mult)
		if p.Set != "" {
			setCounts[p.Set]++
		}
	}

	for set, count := range setCounts {
		bonus, ok := agg.SetBonuses[set]
		if !ok || count < bonus.Parts {
			continue
		}
		total.Atk += bonus.Bonus.Atk
		total.HP += bonus.Bonus.HP
		total.Def += bonus.Bonus.Def
	}
	return total
}

// Player builds the player's battle stats at full hp and mp.
func Player(agg domain.EquipmentAggregate) domain.PlayerStats {
	atk := int(BasePlayerAtk * WeaponMultiplier(agg.WeaponLevel))
	hp := int(BasePlayerHP * (1 + float64(max(agg.WeaponLevel, 0))*WeaponHPPerLevel))

	armor := ArmorStats(agg)
	atk += armor.Atk
	hp += armor.HP
	def := BasePlayerDef + armor.Def

	return domain.PlayerStats{
		Atk:   atk,
		Def:   def,
		HP:    hp,
		MaxHP: hp,
		MP:    BasePlayerMP,
		MaxMP: BasePlayerMP,
	}
}

// Amount is the jelly paid for clearing stage.
func Amount(stage int, special bool) int64 {
	amount := int64(stage) * RewardPerStage
	if special {
		amount *= SpecialRewardFactor
	}
	return amount
}

// RollDrops rolls the item drops for a cleared stage. rnd returns values in [0, 1).
func RollDrops(stage int, special bool, rnd func() float64) []string {
	var drops []string
	if utils.Chance(IronOreDropPercent, rnd) {
		drops = append(drops, domain.ItemIronOre)
	}
	if (IsBoss(stage) || special) && utils.Chance(SteelDropPercent, rnd) {
		drops = append(drops, domain.ItemSteelIngot)
	}
	return drops
}

// EstimateTurns is the number of plain attacks needed to bring hp to zero.
func EstimateTurns(monsterHP, playerAtk int) int {
	turns := int(math.Ceil(float64(monsterHP) / float64(max(1, playerAtk))))
	return max(1, turns)
}

// Preview assembles the encounter shown before a battle starts.
func Preview(stage int, special bool, agg domain.EquipmentAggregate) EncounterPreview {
	m := Monster(stage, special)
	p := Player(agg)
	return EncounterPreview{
		Stage:          stage,
		Special:        special,
		Boss:           m.Boss,
		Monster:        m,
		Player:         p,
		ExpectedReward: Amount(stage, special),
		EstimatedTurns: EstimateTurns(m.HP, p.Atk),
	}
}
