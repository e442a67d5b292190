package event

// EventSchemaVersion is stamped on every payload. Bump it when a payload's
// fields change meaning.
const EventSchemaVersion = "1.0"

// Log and error messages
const (
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %w"
	LogMsgPublishFailed      = "Event publish failed"
	ErrMsgNoPayload          = "event has no payload"
	ErrMsgDecodePayload      = "decode payload as %T: %w"
)
