package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"

	// DefaultConfigPath is where the catalog is read from when none is configured
	DefaultConfigPath = "configs/items.json"

	// DefaultSchemaPath is the JSON schema the catalog must satisfy
	DefaultSchemaPath = "configs/schemas/items.schema.json"

	// schemaURL is the resource id the schema is compiled under. It matches the
	// schema's $id.
	schemaURL = "https://jellybot.local/schemas/items.schema.json"
)

// DefaultStockVolatility is used for stocks that do not declare one.
const DefaultStockVolatility = 0.05

// ShopSellBackPercent is the share of the shop price paid when selling back.
const ShopSellBackPercent = 50

// maxEffectDepth bounds nested combo/random effects.
const maxEffectDepth = 3

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgReadSchemaFailed     = "failed to read items schema: %w"
	ErrMsgCompileSchemaFailed  = "failed to compile items schema: %w"
	ErrMsgSchemaValidation     = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoCollectibles   = "no collectibles defined"
	ErrMsgEmptyTiers       = "has no tiers"
	ErrMsgEffectNoActions  = "reset_cooldowns effect needs at least one action"
	ErrMsgEffectNoAmount   = "effect needs a positive amount"
	ErrMsgEffectNoChildren = "effect needs children"
	ErrMsgEffectTooDeep    = "effect nesting is too deep"
	ErrMsgUnknownEffect    = "unknown effect type"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtDuplicateName  = "%w: duplicate %s '%s'"
	ErrFmtInvalidEntry   = "%w: %s '%s' %s"
	ErrFmtUnknownSetKey  = "%w: armor '%s' references unknown set '%s'"
	ErrFmtInvalidEffect  = "%w: consumable '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
