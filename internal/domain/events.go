package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "battle.concluded")
const (
	// EventTypeBattleConcluded is published when a dungeon battle reaches a terminal state
	EventTypeBattleConcluded = "battle.concluded"

	// EventTypeUpgradeAttempted is published after every upgrade or enhancement roll
	EventTypeUpgradeAttempted = "upgrade.attempted"

	// EventTypeMarketTicked is published after a simulator pass
	EventTypeMarketTicked = "market.ticked"

	// EventTypeStockTraded is published after a successful stock trade
	EventTypeStockTraded = "stock.traded"

	// EventTypeDailyClaimed is published when a daily reward is claimed
	EventTypeDailyClaimed = "daily.claimed"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"
)
