package app

import (
	"os"

	"artmarket-partner-console/internal/config"
	"artmarket-partner-console/internal/logx"
)

// NewLogger returns the JSON logger writing to stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel)
}
