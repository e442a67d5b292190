package config

// Env var names read outside the Config struct tags
const (
	EnvAPIKey     = "API_KEY"
	EnvDBPassword = "DB_PASSWORD"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv       = "failed to parse environment: %w"
	ErrMsgInvalidConfig  = "invalid configuration: %w"
	ErrMsgInvalidWindow  = "invalid cooldown window for %q: %w"
	ErrMsgLoadTimezone   = "failed to load timezone %q: %w"
	ErrMsgNegativeWindow = "cooldown window for %q must be positive"
)

// Warning messages
const (
	WarnMsgExamplePassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey   = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgDevModeInProd   = "DEV_MODE is enabled outside the dev environment - cooldowns are bypassed"
)
