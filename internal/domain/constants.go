package domain

import "time"

// Item names used by core rules. Display names are the stored keys.
const (
	ItemHPPotion         = "HP 물약"
	ItemMPPotion         = "MP 물약"
	ItemAttackBuff       = "공격력 증폭제"
	ItemReviveStone      = "부활의 돌"
	ItemDungeonTicket    = "던전 입장권"
	ItemIronOre          = "철광석"
	ItemSteelIngot       = "강철 주괴"
	ItemGoldIngot        = "순금 주괴"
	ItemDiamondCrystal   = "다이아몬드 결정"
	ItemProtectionScroll = "강화 보호 주문서"
	ItemSpiderSilk       = "거미줄"
	ItemOakWood          = "참나무"
)

// Upgrade tracks
const (
	TrackFishingRod = "fishing_rod"
	TrackPickaxe    = "pickaxe"
	TrackAxe        = "axe"
	TrackSword      = "sword"
	// TrackArmor labels armor enhancement attempts.
	TrackArmor = "armor"
)

// ToolTracks lists the tool upgrade tracks in display order.
var ToolTracks = []string{TrackFishingRod, TrackPickaxe, TrackAxe, TrackSword}

// Cooldown action names
const (
	ActionDaily    = "daily"
	ActionMine     = "mine"
	ActionFish     = "fish"
	ActionChop     = "chop"
	ActionScavenge = "scavenge"
	ActionHunt     = "hunt"
	ActionCrime    = "crime"
)

// Timeouts
const (
	// BattleInputTimeout is how long a caller's UI should wait for a turn before
	// abandoning the prompt. The session stays saved.
	BattleInputTimeout = 5 * time.Minute
)
