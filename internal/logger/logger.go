// Package logger provides per-subsystem structured loggers built on log/slog.
//
// Levels and output format come from the environment:
//
//	# info everywhere, debug for the cli subsystem
//	TEXTCRYPT_LOG_LEVEL=cli=debug,info
//
//	# JSON output
//	TEXTCRYPT_LOG_FORMAT=json
//
// Usage:
//
//	log := logger.Logger("cli")
//	log.Info("signed input", "format", format, "bytes", n)
//
// Never pass key material or plaintext as log attributes.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type entry struct {
	logger  *slog.Logger
	level   *slog.LevelVar
	handler *swapHandler
}

var (
	mu      sync.Mutex
	active  = ConfigFromEnv()
	loggers = map[string]*entry{}

	outputMu sync.RWMutex
	output   io.Writer = os.Stderr
)

// Logger returns the logger for a subsystem. Repeated calls with the same
// name return the same logger.
func Logger(subsystem string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if e, ok := loggers[subsystem]; ok {
		return e.logger
	}

	level := new(slog.LevelVar)
	level.Set(active.LevelFor(subsystem))

	h := newSwapHandler(newHandler(subsystem, level, active.Format))
	e := &entry{
		logger:  slog.New(h),
		level:   level,
		handler: h,
	}
	loggers[subsystem] = e
	return e.logger
}

// Configure replaces the active configuration. Levels and output format
// of existing loggers change immediately.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	formatChanged := cfg.Format != active.Format
	active = cfg
	for name, e := range loggers {
		e.level.Set(cfg.LevelFor(name))
		if formatChanged {
			e.handler.swap(newHandler(name, e.level, cfg.Format))
		}
	}
}

// SetOutput redirects all loggers, including existing ones, to w.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

// Discard returns a logger that drops everything. Intended for tests.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// reset drops cached loggers and restores the environment configuration.
func reset() {
	mu.Lock()
	loggers = map[string]*entry{}
	active = ConfigFromEnv()
	mu.Unlock()
	SetOutput(os.Stderr)
}
