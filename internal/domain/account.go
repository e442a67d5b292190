package domain

import "time"

// Account is the ledger owner, keyed by an opaque platform user id.
type Account struct {
	UserID      string     `json:"user_id"`
	Balance     int64      `json:"balance"`
	Affinity    int64      `json:"affinity"`
	DailyStreak int        `json:"daily_streak"`
	LastDaily   *time.Time `json:"last_daily,omitempty"`
}

// InventorySlot is one stack of a named item. Amount is always positive.
type InventorySlot struct {
	ItemName string `json:"item_name"`
	Amount   int    `json:"amount"`
}

// InventoryCount returns the amount of itemName held in slots.
func InventoryCount(slots []InventorySlot, itemName string) int {
	for _, s := range slots {
		if s.ItemName == itemName {
			return s.Amount
		}
	}
	return 0
}

// DailyClaim is the outcome of a daily reward claim.
type DailyClaim struct {
	Claimed bool  `json:"claimed"`
	Streak  int   `json:"streak"`
	Reward  int64 `json:"reward"`
}

// UseResult describes what consuming an item did.
type UseResult struct {
	ItemName        string   `json:"item_name"`
	CooldownsReset  []string `json:"cooldowns_reset,omitempty"`
	JellyGranted    int64    `json:"jelly_granted,omitempty"`
	AffinityGranted int64    `json:"affinity_granted,omitempty"`
	Message         string   `json:"message"`
}

// PurchaseResult is the outcome of buying from the shop. Success is false
// when the balance did not cover Total.
type PurchaseResult struct {
	Success  bool   `json:"success"`
	ItemName string `json:"item_name"`
	Amount   int    `json:"amount"`
	Price    int64  `json:"price"`
	Total    int64  `json:"total"`
}

// GiftResult describes one gifted item.
type GiftResult struct {
	ItemName        string `json:"item_name"`
	AffinityGranted int64  `json:"affinity_granted"`
}
