package postgres

// Defaults for rows that do not exist yet
const (
	DefaultDungeonStage = 1
	DefaultLevel        = 1
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToUpdateBalance  = "failed to update balance"
	ErrMsgFailedToDebitBalance   = "failed to debit balance"
	ErrMsgFailedToUpdateAffinity = "failed to update affinity"
	ErrMsgFailedToUpdateDaily    = "failed to update daily claim"
	ErrMsgFailedToGetInventory   = "failed to get inventory"
	ErrMsgFailedToAddItem        = "failed to add item"
	ErrMsgFailedToRemoveItem     = "failed to remove item"
	ErrMsgFailedToLockItems      = "failed to lock inventory rows"
	ErrMsgNegativeAmount         = "amount must not be negative"
)

// Error Messages - Market Operations
const (
	ErrMsgFailedToGetMarketEntry  = "failed to get market entry"
	ErrMsgFailedToSaveMarketEntry = "failed to save market entry"
	ErrMsgFailedToGetHistory      = "failed to get price history"
	ErrMsgFailedToUpsertStock     = "failed to upsert stock"
	ErrMsgFailedToGetStock        = "failed to get stock"
	ErrMsgFailedToUpdateStock     = "failed to update stock price"
	ErrMsgFailedToGetHoldings     = "failed to get holdings"
	ErrMsgFailedToSaveHolding     = "failed to save holding"
	ErrMsgTotalOverflowFmt        = "%w: %d x %d overflows the trade total"
)

// Error Messages - Progression Operations
const (
	ErrMsgFailedToGetUpgrades    = "failed to get upgrade levels"
	ErrMsgFailedToSaveUpgrade    = "failed to save upgrade level"
	ErrMsgFailedToGetEnhancement = "failed to get enhancement level"
	ErrMsgFailedToSaveEnhance    = "failed to save enhancement level"
	ErrMsgFailedToGetEquipment   = "failed to get equipment"
	ErrMsgFailedToSaveEquipment  = "failed to save equipment"
	ErrMsgFailedToGetPets        = "failed to get pets"
	ErrMsgFailedToSavePet        = "failed to save pet"
	ErrMsgFailedToGetJobs        = "failed to get jobs"
	ErrMsgFailedToSaveJob        = "failed to save job"
)

// Error Messages - Dungeon Operations
const (
	ErrMsgFailedToGetSession      = "failed to get dungeon session"
	ErrMsgFailedToSaveSession     = "failed to save dungeon session"
	ErrMsgFailedToDeleteSession   = "failed to delete dungeon session"
	ErrMsgFailedToDecodeSession   = "failed to decode dungeon session"
	ErrMsgFailedToGetProgress     = "failed to get dungeon progress"
	ErrMsgFailedToAdvanceProgress = "failed to advance dungeon progress"
	ErrMsgFailedToGetSettings     = "failed to get dungeon settings"
	ErrMsgFailedToSaveSettings    = "failed to save dungeon settings"
	ErrMsgFailedToGetFavorites    = "failed to get dungeon favorites"
	ErrMsgFailedToSaveFavorite    = "failed to save dungeon favorite"
	ErrMsgFailedToInsertRecord    = "failed to insert dungeon record"
	ErrMsgFailedToGetRecords      = "failed to get dungeon records"
)
