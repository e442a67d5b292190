package main

import (
	"io"
	"log/slog"

	"github.com/osse101/JellyBot_Go/internal/bootstrap"
	"github.com/osse101/JellyBot_Go/internal/config"
)

// loadConfig reads configuration, sets up logging and reports config warnings.
// The returned closer flushes the log file.
func loadConfig() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}
	return cfg, logFile, nil
}

func closeLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Error(bootstrap.LogMsgLogFileCloseFailed, "error", err)
	}
}
