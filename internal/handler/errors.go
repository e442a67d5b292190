package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgEmptyBody             = "Request body is required"

	// Query and path parameter messages
	ErrMsgInvalidIntParam  = "Parameter %s must be a number"
	ErrMsgInvalidBoolParam = "Parameter %s must be true or false"
	ErrMsgInvalidPetID     = "Invalid pet id"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response"
	LogMsgServiceFailedSuffix  = ": service error"
	LogMsgServiceRefusedSuffix = ": refused"
	LogMsgDecodeFailed         = "failed to decode request"
	LogMsgValidationFailed     = "request failed validation"
)

// Success messages for API responses
const (
	MsgItemAddedSuccess    = "Item added successfully"
	MsgBalanceUpdated      = "Balance updated"
	MsgAffinityUpdated     = "Affinity updated"
	MsgCooldownStarted     = "Cooldown started"
	MsgCooldownReset       = "Cooldown reset"
	MsgSessionDiscarded    = "Dungeon run discarded"
	MsgSettingsSaved       = "Dungeon settings saved"
	MsgFavoriteAdded       = "Favorite saved"
	MsgFavoriteRemoved     = "Favorite removed"
	MsgFavoriteNotFound    = "That favorite was not saved"
	MsgTransferDeclined    = "Not enough jelly to transfer"
	MsgDeductDeclined      = "Not enough jelly"
	MsgItemsDeductDeclined = "Not enough items"
	MsgNoSavedSession      = "No dungeon in progress"
	MsgItemUnequipped      = "Item unequipped"
	MsgMarketTickCompleted = "Market tick completed"
)
