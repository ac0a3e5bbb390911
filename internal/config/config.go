// Package config loads command-line defaults from a YAML file, a .env file
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/textcrypt/textcrypt"
	"github.com/textcrypt/textcrypt/internal/crypto"
	"github.com/textcrypt/textcrypt/internal/logger"
)

const (
	// DefaultMaxInputBytes bounds how much input the CLI reads per call.
	DefaultMaxInputBytes int64 = 64 << 20

	// MaxInputBytesLimit is the largest accepted MaxInputBytes.
	MaxInputBytesLimit int64 = 1 << 40

	// EnvConfigPath names the YAML file to load when no path is given.
	EnvConfigPath = "TEXTCRYPT_CONFIG"
)

// Config holds CLI defaults. Flags given on the command line take
// precedence over every field.
type Config struct {
	Format        textcrypt.Format `yaml:"format"`
	Encoding      crypto.Codec     `yaml:"encoding"`
	MaxInputBytes int64            `yaml:"maxInputBytes"`
	OutputDir     string           `yaml:"outputDir"`
	Log           LogConfig        `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a level spec such as "info" or "cli=debug,warn".
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format:        textcrypt.FormatBlake3,
		Encoding:      crypto.CodecBase64URL,
		MaxInputBytes: DefaultMaxInputBytes,
		OutputDir:     ".",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the configuration. Sources are applied in order: defaults,
// the YAML file at path (or $TEXTCRYPT_CONFIG when path is empty), the
// dotenv file, then the environment. A missing dotenv file is ignored; a
// missing YAML file that was asked for is an error.
func Load(path, dotenv string) (Config, error) {
	cfg := Default()

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// Decoding onto the defaults leaves fields absent from the file unchanged.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies TEXTCRYPT_* variables on top of cfg.
func ApplyEnvOverrides(cfg *Config) error {
	if v := envString("TEXTCRYPT_FORMAT"); v != "" {
		f, err := textcrypt.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("TEXTCRYPT_FORMAT: %w", err)
		}
		cfg.Format = f
	}

	if v := envString("TEXTCRYPT_ENCODING"); v != "" {
		c, err := crypto.ParseCodec(v)
		if err != nil {
			return fmt.Errorf("TEXTCRYPT_ENCODING: %w", err)
		}
		cfg.Encoding = c
	}

	if v := envString("TEXTCRYPT_MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TEXTCRYPT_MAX_INPUT_BYTES: %w", err)
		}
		cfg.MaxInputBytes = n
	}

	if v := envString("TEXTCRYPT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := envString("TEXTCRYPT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := envString("TEXTCRYPT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := c.Format.MarshalText(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := crypto.ParseCodec(string(c.Encoding)); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if c.MaxInputBytes <= 0 || c.MaxInputBytes > MaxInputBytesLimit {
		return fmt.Errorf("maxInputBytes must be in 1..%d, got %d", MaxInputBytesLimit, c.MaxInputBytes)
	}
	if _, err := c.Logger(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Logger returns the logging configuration described by c.Log.
func (c Config) Logger() (logger.Config, error) {
	return logger.ParseConfig(c.Log.Level, c.Log.Format)
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
