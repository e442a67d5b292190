package progression

import "github.com/osse101/JellyBot_Go/internal/domain"

// ==================== XP Curves ====================

const (
	// PetXPPerLevel and JobXPPerLevel are K in "level N needs N*K xp".
	PetXPPerLevel = 100
	JobXPPerLevel = 120
)

// ==================== Tool Upgrades ====================

const (
	ToolGuaranteedBelow = 3
	ToolChanceBase      = 100
	ToolChancePerLevel  = 5
	ToolChanceFloor     = 10
)

// toolMaterials is the material and per-level multiplier for each tool track.
var toolMaterials = map[string]struct {
	item string
	per  int
}{
	domain.TrackFishingRod: {domain.ItemSpiderSilk, 2},
	domain.TrackPickaxe:    {domain.ItemOakWood, 3},
	domain.TrackAxe:        {domain.ItemIronOre, 2},
	domain.TrackSword:      {domain.ItemIronOre, 5},
}

// ==================== Armor Enhancement ====================

const (
	EnhanceCostPerLevel = 5000
	SafeEnhanceBelow    = 5
	DangerEnhanceFrom   = 10

	MidChanceBase     = 90
	MidChancePerLevel = 10
	MidChanceFloor    = 50

	DangerChanceBase     = 45
	DangerChancePerLevel = 5
	DangerChanceFloor    = 5
)

// ==================== Error Messages ====================

const (
	ErrMsgUpgradeFailed       = "upgrade"
	ErrMsgEnhanceFailed       = "enhance armor"
	ErrMsgEquipFailed         = "equip"
	ErrMsgUnequipFailed       = "unequip"
	ErrMsgGetEquipmentFailed  = "get equipment"
	ErrMsgGetLevelsFailed     = "get upgrade levels"
	ErrMsgPetsFailed          = "pets"
	ErrMsgJobsFailed          = "jobs"
	ErrMsgUnknownTrackFmt     = "%w: %s"
	ErrMsgMaxLevelFmt         = "%w: %s is at level %d"
	ErrMsgInvalidSlotFmt      = "%w: %s"
	ErrMsgNotEquippableFmt    = "%w: %s in %s"
	ErrMsgNotEnhanceableFmt   = "%w: %s"
	ErrMsgNegativeXPFmt       = "%w: xp %d must not be negative"
	ErrMsgEmptyFieldFmt       = "%w: %s is required"
	ErrMsgPetNotFoundFmt      = "%w: %d"
	ErrMsgInsufficientItemFmt = "%w: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgStorageFailure = "Progression storage failure"
	LogMsgUpgradeRolled  = "Upgrade rolled"
	LogMsgEnhanceRolled  = "Armor enhancement rolled"
	LogMsgScrollConsumed = "Protection scroll consumed"
	LogMsgEquipped       = "Item equipped"
	LogMsgUnequipped     = "Item unequipped"
	LogMsgPetAdopted     = "Pet adopted"
	LogMsgLevelUp        = "Level up"
	LogMsgMissingArmor   = "Equipped item missing from catalog, skipped"
)
