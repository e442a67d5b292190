package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/JellyBot_Go/internal/config"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with stdout and a rotating
// file in cfg.LogDir. The returned closer releases the file.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     LogFileMaxAgeDays,
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment, cfg.Environment == "dev")
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, file))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", file.Filename)
	slog.Info(LogMsgStartingJellyBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"catalog", cfg.CatalogPath,
		"market_tick_interval", cfg.MarketTickInterval,
		"dev_mode", cfg.DevMode)

	return file, nil
}
