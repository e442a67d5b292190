package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	APIKey      string `env:"API_KEY" validate:"required"`
	DevMode     bool   `env:"DEV_MODE" envDefault:"false"`

	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir        string `env:"LOG_DIR" envDefault:"logs"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50" validate:"min=1"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"9" validate:"min=0"`

	DBUser     string `env:"DB_USER" envDefault:"postgres" validate:"required"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost" validate:"required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432" validate:"numeric"`
	DBName     string `env:"DB_NAME" envDefault:"jellybot" validate:"required"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns int    `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=2"`

	CatalogPath       string `env:"CATALOG_PATH" envDefault:"configs/items.json" validate:"required"`
	CatalogSchemaPath string `env:"CATALOG_SCHEMA_PATH" envDefault:"configs/schemas/items.schema.json"`

	MarketTickInterval time.Duration `env:"MARKET_TICK_INTERVAL" envDefault:"30m" validate:"min=1s"`
	PriceCacheTTL      time.Duration `env:"PRICE_CACHE_TTL" envDefault:"5m" validate:"min=0"`
	PriceCacheSize     int           `env:"PRICE_CACHE_SIZE" envDefault:"256" validate:"min=1"`
	WorkerCount        int           `env:"WORKER_COUNT" envDefault:"2" validate:"min=1"`
	WorkerQueueSize    int           `env:"WORKER_QUEUE_SIZE" envDefault:"16" validate:"min=1"`

	DailyTimezone    string `env:"DAILY_TIMEZONE" envDefault:"Asia/Seoul" validate:"required"`
	DailyBaseReward  int64  `env:"DAILY_BASE_REWARD" envDefault:"1000" validate:"min=0"`
	DailyStreakBonus int64  `env:"DAILY_STREAK_BONUS" envDefault:"100" validate:"min=0"`
	DailyStreakCap   int    `env:"DAILY_STREAK_CAP" envDefault:"30" validate:"min=0"`

	// Cooldowns maps action names to window durations, e.g. "mine:5m,fish:5m".
	Cooldowns map[string]string `env:"COOLDOWNS" envDefault:"mine:5m,fish:5m,chop:5m,scavenge:3m,hunt:10m,crime:30m" envKeyValSeparator:":"`
}

// Load loads the configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and the values that need parsing.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	if _, err := c.CooldownWindows(); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	if _, err := c.DailyLocation(); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return nil
}

// CooldownWindows parses the configured cooldown table.
func (c *Config) CooldownWindows() (map[string]time.Duration, error) {
	out := make(map[string]time.Duration, len(c.Cooldowns))
	for action, raw := range c.Cooldowns {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidWindow, action, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf(ErrMsgNegativeWindow, action)
		}
		out[action] = d
	}
	return out, nil
}

// DailyLocation is the timezone whose calendar days bound daily claims.
func (c *Config) DailyLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DailyTimezone)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadTimezone, c.DailyTimezone, err)
	}
	return loc, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}
