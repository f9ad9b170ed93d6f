package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"WARN", false, true},
		{"", false, true},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Logger{Level: tt.level}
			logger, err := cfg.Configure(&buf)
			require.NoError(t, err)

			logger.Debug("debug message")
			logger.Warn("warn message")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn message")))
		})
	}
}

func TestLogger_Configure_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Logger{Level: "info", JSON: true}
	logger, err := cfg.Configure(&buf)
	require.NoError(t, err)

	logger.Info("hello", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestLogger_Configure_UnknownLevel(t *testing.T) {
	cfg := &Logger{Level: "verbose"}
	_, err := cfg.Configure(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestLogger_Verbose(t *testing.T) {
	assert.True(t, (&Logger{Level: "debug"}).Verbose())
	assert.True(t, (&Logger{Level: "DEBUG"}).Verbose())
	assert.False(t, (&Logger{Level: "warn"}).Verbose())
}
