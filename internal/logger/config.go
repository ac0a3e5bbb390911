package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format int

const (
	// FormatText is logfmt-style key=value output.
	FormatText Format = iota
	// FormatJSON is one JSON object per line.
	FormatJSON
)

// Config holds logging levels and format.
type Config struct {
	DefaultLevel    slog.Level
	SubsystemLevels map[string]slog.Level
	Format          Format
}

// LevelFor returns the level for a subsystem.
func (c Config) LevelFor(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

// DefaultConfig logs warnings and errors as text.
func DefaultConfig() Config {
	return Config{
		DefaultLevel:    slog.LevelWarn,
		SubsystemLevels: map[string]slog.Level{},
		Format:          FormatText,
	}
}

// ConfigFromEnv reads TEXTCRYPT_LOG_LEVEL and TEXTCRYPT_LOG_FORMAT.
// Invalid values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if spec := os.Getenv("TEXTCRYPT_LOG_LEVEL"); spec != "" {
		if parsed, err := ParseConfig(spec, os.Getenv("TEXTCRYPT_LOG_FORMAT")); err == nil {
			return parsed
		}
	}
	if format, err := ParseFormat(os.Getenv("TEXTCRYPT_LOG_FORMAT")); err == nil {
		cfg.Format = format
	}
	return cfg
}

// ParseConfig builds a Config from a level spec and a format name.
//
// The level spec is a comma-separated list of "subsystem=level" pairs and
// at most one bare default level, e.g. "cli=debug,info".
func ParseConfig(levelSpec, format string) (Config, error) {
	cfg := DefaultConfig()

	for _, part := range strings.Split(levelSpec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		subsystem, name, found := strings.Cut(part, "=")
		if !found {
			level, err := ParseLevel(part)
			if err != nil {
				return Config{}, err
			}
			cfg.DefaultLevel = level
			continue
		}

		level, err := ParseLevel(strings.TrimSpace(name))
		if err != nil {
			return Config{}, err
		}
		cfg.SubsystemLevels[strings.TrimSpace(subsystem)] = level
	}

	f, err := ParseFormat(format)
	if err != nil {
		return Config{}, err
	}
	cfg.Format = f

	return cfg, nil
}

// ParseLevel parses debug, info, warn (or warning) and error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// ParseFormat parses "text" or "json". The empty string is text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown log format %q", name)
}
