package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(slog.LevelInfo)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(slog.LevelInfo)
	})
	return &buf
}

func TestInfoWritesJSONLine(t *testing.T) {
	buf := capture(t)

	Info("ticket issued", map[string]any{"customer": "Alice"})

	var msg logMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, "INFO", msg.Level)
	assert.Equal(t, "ticket issued", msg.Message)
	assert.Equal(t, "Alice", msg.Data["customer"])
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel(slog.LevelWarn)

	Debug("hidden")
	Info("hidden")
	Warn("shown")
	Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestSetupWritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Setup(dir))
	t.Cleanup(func() { SetOutput(nil) })

	Info("purchase", map[string]any{"brand": "Endava"})

	matches, err := filepath.Glob(filepath.Join(dir, "app.*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), `"brand":"Endava"`)
}
