package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	for _, level := range []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug, LogLevelTrace} {
		got, err := ParseLogLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", 0, LogLevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown %d", 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 1", entry["msg"])
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", 0, LogLevelInfo).WithFields(Fields{"board": "b1"})
	logger.WithFields(Fields{"q": 2}).Info("flipped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "b1", entry["board"])
	assert.Equal(t, float64(2), entry["q"])
	assert.Equal(t, "flipped", entry["msg"])
}
