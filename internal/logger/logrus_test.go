package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", false)
	require.NoError(t, err)

	l.Debug("hidden", nil)
	l.Info("shown", Fields{"curve": "P256"})
	l.Critical("broken", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "curve=P256")
	assert.Contains(t, out, "CRITICAL: broken")
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", true)
	require.NoError(t, err)

	l.With(Fields{"op": "add"}).Debug("done", Fields{"ok": true})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "done", line["msg"])
	assert.Equal(t, "add", line["op"])
	assert.Equal(t, true, line["ok"])
	assert.Equal(t, "debug", line["level"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "verbose", false)
	assert.Error(t, err)
}
