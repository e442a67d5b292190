package ledger

import "time"

// ==================== Defaults ====================

const (
	DefaultDailyBaseReward  = 1000
	DefaultDailyStreakBonus = 100
	DefaultDailyStreakCap   = 30

	dateLayout = "2006-01-02"
)

// DefaultLocation is used when no daily timezone is configured.
var DefaultLocation = time.FixedZone("KST", 9*60*60)

// ==================== Error Messages ====================

const (
	ErrMsgGetBalanceFailed      = "get balance"
	ErrMsgUpdateBalanceFailed   = "update balance"
	ErrMsgDebitFailed           = "debit balance"
	ErrMsgAddItemFailed         = "add item"
	ErrMsgRemoveItemFailed      = "remove item"
	ErrMsgRemoveItemsFailed     = "remove items"
	ErrMsgGetInventoryFailed    = "get inventory"
	ErrMsgCheckCooldownFailed   = "check cooldown"
	ErrMsgUpdateCooldownFailed  = "update cooldown"
	ErrMsgResetCooldownFailed   = "reset cooldown"
	ErrMsgGetAccountFailed      = "get account"
	ErrMsgUpdateAffinityFailed  = "update affinity"
	ErrMsgClaimDailyFailed      = "claim daily"
	ErrMsgTransferFailed        = "transfer"
	ErrMsgApplyEffectFailed     = "apply item effect"
	ErrMsgBuyItemFailed         = "buy item"
	ErrMsgGiftItemFailed        = "gift item"
	ErrMsgInvalidAmountFmt      = "%w: amount %d must be at least 1"
	ErrMsgNotForSaleFmt         = "%w: %s is not sold in the shop"
	ErrMsgTotalOverflowFmt      = "%w: %d x %d overflows the purchase total"
	ErrMsgNotGiftableFmt        = "%w: %s cannot be gifted"
	ErrMsgNegativeItemAmountFmt = "%w: item amount %d must not be negative"
	ErrMsgEmptyUserFmt          = "%w: user id is required"
	ErrMsgSelfTransferFmt       = "%w: cannot transfer to yourself"
	ErrMsgUnknownItemFmt        = "%w: %s"
	ErrMsgNoEffectFmt           = "%w: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgStorageFailure    = "Ledger storage failure, returning safe default"
	LogMsgDebitRejected     = "Debit rejected, insufficient balance"
	LogMsgItemDebitRejected = "Item debit rejected, insufficient quantity"
	LogMsgDailyClaimed      = "Daily reward claimed"
	LogMsgDailyAlreadyTaken = "Daily reward already claimed today"
	LogMsgDailyReset        = "Daily claim reset by item"
	LogMsgTransferDone      = "Balance transferred"
	LogMsgItemUsed          = "Item used"
	LogMsgItemBought        = "Item bought from shop"
	LogMsgItemGifted        = "Item gifted"
)
