package middleware

// Route parameters
const (
	// URLParamUserID is the chi route parameter holding the account id
	URLParamUserID = "userID"
)

// Account id limits
const (
	// MaxUserIDLength bounds the opaque platform id accepted on account routes
	MaxUserIDLength = 64

	// EmptyUserID represents an empty or missing user ID
	EmptyUserID = ""
)

// Response messages
const (
	ErrMsgMissingUserID = "missing account id"
	ErrMsgInvalidUserID = "invalid account id"
)

// Log Messages
const (
	LogMsgRejectedUserID = "Rejected account id"
)
