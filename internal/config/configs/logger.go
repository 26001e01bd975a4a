package configs

import (
	"log/slog"
	"strings"
)

// Logger tunes the process-wide slog output. Level is the minimum level
// emitted and Format picks the handler encoding, "text" or "json".
// Unrecognized values degrade to the defaults instead of failing startup.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level onto slog, defaulting to info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the handler encoding; anything but "json" means
// "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}
