// internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/anchor-cli/internal/config"
)

// newBufferedLogger initializes the global logger against an in-memory
// writer, resetting the singleton first for test isolation.
func newBufferedLogger(t *testing.T, cfg config.LoggerConfig) *bytes.Buffer {
	t.Helper()
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(cfg, zapcore.AddSync(&buf))
	return &buf
}

func TestInitializeConsoleFormat(t *testing.T) {
	buf := newBufferedLogger(t, config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "anchor-test",
		Colors:      config.ColorConfig{Info: "green"},
	})

	GetLogger().Info("hello from the console core")
	Sync()

	out := buf.String()
	assert.Contains(t, out, "hello from the console core")
	assert.Contains(t, out, "anchor-test.")
	assert.Contains(t, out, "\x1b[32mINFO\x1b[0m", "info level is colorized green")
}

func TestInitializeJSONFormat(t *testing.T) {
	buf := newBufferedLogger(t, config.LoggerConfig{
		Level:       "info",
		Format:      "json",
		ServiceName: "anchor-test",
	})

	GetLogger().Info("structured entry")
	Sync()

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "structured entry", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	buf := newBufferedLogger(t, config.LoggerConfig{
		Level:  "warn",
		Format: "json",
	})

	log := GetLogger()
	log.Debug("dropped")
	log.Info("also dropped")
	log.Warn("kept")
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	buf := newBufferedLogger(t, config.LoggerConfig{
		Level:  "loud",
		Format: "json",
	})

	log := GetLogger()
	log.Debug("filtered at info")
	log.Info("visible")
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "filtered at info")
	assert.Contains(t, out, "visible")
}

func TestInitializeIsOnce(t *testing.T) {
	buf := newBufferedLogger(t, config.LoggerConfig{Level: "info", Format: "json"})

	var second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&second))

	GetLogger().Info("goes to the first writer")
	Sync()

	assert.Contains(t, buf.String(), "goes to the first writer")
	assert.Empty(t, second.String())
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	log := GetLogger()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("fallback logger works") })
}

func TestSyncWithoutLogger(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	assert.NotPanics(t, Sync)
}
