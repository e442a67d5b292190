package logger

const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogFormatJSON   = "json"
	LogFormatText   = "text"
)

const (
	DefaultServiceName = "jellybot"
	DefaultVersion     = "dev"
)

// Attribute keys shared by every line
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
