package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_SubsystemAttribute(t *testing.T) {
	t.Cleanup(reset)
	reset()

	Configure(Config{DefaultLevel: slog.LevelInfo, Format: FormatText})
	buf := &bytes.Buffer{}
	SetOutput(buf)

	Logger("cli").Info("signed input", "bytes", 5)

	out := buf.String()
	assert.Contains(t, out, "signed input")
	assert.Contains(t, out, "bytes=5")
	assert.Contains(t, out, "subsystem=cli")
}

func TestLogger_Cached(t *testing.T) {
	t.Cleanup(reset)
	reset()

	assert.Same(t, Logger("a"), Logger("a"))
	assert.NotSame(t, Logger("a"), Logger("b"))
}

func TestSetOutput_ExistingLogger(t *testing.T) {
	t.Cleanup(reset)
	reset()

	Configure(Config{DefaultLevel: slog.LevelInfo})
	log := Logger("early")

	buf := &bytes.Buffer{}
	SetOutput(buf)
	log.Info("after switch")

	assert.Contains(t, buf.String(), "after switch")
}

func TestConfigure_ChangesExistingLevels(t *testing.T) {
	t.Cleanup(reset)
	reset()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	Configure(Config{DefaultLevel: slog.LevelError})
	log := Logger("cli")

	log.Info("hidden")
	assert.Empty(t, buf.String())

	Configure(Config{DefaultLevel: slog.LevelError, SubsystemLevels: map[string]slog.Level{"cli": slog.LevelDebug}})
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_JSON(t *testing.T) {
	t.Cleanup(reset)
	reset()

	Configure(Config{DefaultLevel: slog.LevelInfo, Format: FormatJSON})
	buf := &bytes.Buffer{}
	SetOutput(buf)

	Logger("json").Info("hello", "format", "ed25519")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "json", record["subsystem"])
	assert.Equal(t, "ed25519", record["format"])
	assert.Contains(t, record, "ts")
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("cli=debug, crypto=error ,info", "json")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelFor("cli"))
	assert.Equal(t, slog.LevelError, cfg.LevelFor("crypto"))
	assert.Equal(t, slog.LevelInfo, cfg.LevelFor("other"))
	assert.Equal(t, FormatJSON, cfg.Format)

	_, err = ParseConfig("loud", "")
	assert.Error(t, err)

	_, err = ParseConfig("cli=verbose", "")
	assert.Error(t, err)

	_, err = ParseConfig("info", "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TEXTCRYPT_LOG_LEVEL", "cli=debug,error")
	t.Setenv("TEXTCRYPT_LOG_FORMAT", "json")

	cfg := ConfigFromEnv()
	assert.Equal(t, slog.LevelError, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelFor("cli"))
	assert.Equal(t, FormatJSON, cfg.Format)

	t.Setenv("TEXTCRYPT_LOG_LEVEL", "nonsense")
	cfg = ConfigFromEnv()
	assert.Equal(t, slog.LevelWarn, cfg.DefaultLevel)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing")
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestDefaultLevelIsWarn(t *testing.T) {
	t.Cleanup(reset)
	t.Setenv("TEXTCRYPT_LOG_LEVEL", "")
	reset()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	Logger("cli").Info("below default level")

	assert.NotContains(t, buf.String(), "below default level")
}

func TestConfigure_ChangesExistingFormat(t *testing.T) {
	t.Cleanup(reset)
	reset()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	Configure(Config{DefaultLevel: slog.LevelInfo, Format: FormatText})
	log := Logger("cli")
	derived := log.With("run", 2)

	Configure(Config{DefaultLevel: slog.LevelInfo, Format: FormatJSON})

	log.Info("first")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "first", record["msg"])
	assert.Equal(t, "cli", record["subsystem"])

	buf.Reset()
	derived.Info("second")
	record = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "second", record["msg"])
	assert.EqualValues(t, 2, record["run"])

	buf.Reset()
	Configure(Config{DefaultLevel: slog.LevelInfo, Format: FormatText})
	log.Info("third")
	assert.Contains(t, buf.String(), "msg=third")
}
