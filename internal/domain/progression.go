package domain

import "time"

// Equipment slots
const (
	SlotHead      = "head"
	SlotBody      = "body"
	SlotLegs      = "legs"
	SlotFeet      = "feet"
	SlotWeapon    = "weapon"
	SlotAccessory = "accessory"
)

// EquipmentSlots lists every slot in display order.
var EquipmentSlots = []string{SlotHead, SlotBody, SlotLegs, SlotFeet, SlotWeapon, SlotAccessory}

// ValidSlot reports whether slot is an equipment slot.
func ValidSlot(slot string) bool {
	for _, s := range EquipmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Equipment maps occupied slots to item names.
type Equipment map[string]string

// UpgradeResult is the outcome of one upgrade or enhancement attempt.
type UpgradeResult struct {
	Track      string         `json:"track"`
	ItemName   string         `json:"item_name,omitempty"`
	Success    bool           `json:"success"`
	OldLevel   int            `json:"old_level"`
	NewLevel   int            `json:"new_level"`
	Cost       int64          `json:"cost"`
	Materials  map[string]int `json:"materials,omitempty"`
	Chance     int            `json:"chance"`
	Protected  bool           `json:"protected,omitempty"`
	Downgraded bool           `json:"downgraded,omitempty"`
}

// StatBlock is a flat atk/hp/def bonus.
type StatBlock struct {
	Atk int `json:"atk"`
	HP  int `json:"hp"`
	Def int `json:"def"`
}

// ArmorPiece is an equipped armor item with its enhancement level.
type ArmorPiece struct {
	Slot     string    `json:"slot"`
	ItemName string    `json:"item_name"`
	Base     StatBlock `json:"base"`
	Set      string    `json:"set,omitempty"`
	Level    int       `json:"level"`
}

// SetBonus unlocks when Parts pieces of the same set are equipped.
type SetBonus struct {
	Key   string    `json:"key"`
	Name  string    `json:"name"`
	Parts int       `json:"parts"`
	Bonus StatBlock `json:"bonus"`
}

// EquipmentAggregate is everything the reward resolver needs about an account's gear.
type EquipmentAggregate struct {
	WeaponLevel int                 `json:"weapon_level"`
	Pieces      []ArmorPiece        `json:"pieces"`
	SetBonuses  map[string]SetBonus `json:"-"`
}

// Pet is an adopted pet.
type Pet struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	PetType   string    `json:"pet_type"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	XP        int64     `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
}

// JobProgress is an account's level in one job.
type JobProgress struct {
	UserID string `json:"user_id"`
	Job    string `json:"job"`
	Level  int    `json:"level"`
	XP     int64  `json:"xp"`
}

// LevelResult is the state of an XP track after a grant.
type LevelResult struct {
	Level        int   `json:"level"`
	XP           int64 `json:"xp"`
	LevelsGained int   `json:"levels_gained"`
}

// LeveledUp reports whether the grant crossed at least one threshold.
func (r LevelResult) LeveledUp() bool {
	return r.LevelsGained > 0
}
