package reward

// Player base stats before equipment
const (
	BasePlayerAtk = 10
	BasePlayerHP  = 100
	BasePlayerMP  = 100
	BasePlayerDef = 0
)

// Monster scaling
const (
	MonsterHPPerStage  = 60
	MonsterAtkPerStage = 3
	BossInterval       = 10
	BossHPFactor       = 1.5
	BossAtkFactor      = 1.2
	SpecialHPFactor    = 1.5
	SpecialAtkFactor   = 1.5
)

// Rewards and drops
const (
	RewardPerStage      = 1000
	SpecialRewardFactor = 3
	IronOreDropPercent  = 30
	SteelDropPercent    = 10
)

// Per-level growth
const (
	WeaponHPPerLevel  = 0.2
	ArmorStatPerLevel = 0.1
)

// WeaponMultipliers is the attack multiplier per sword level. Levels past the end
// use the last entry.
var WeaponMultipliers = []float64{1.0, 1.5, 2.0, 3.5, 6.0, 15.0}
