package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("transmission accepted", slog.String("transmission_id", "abc"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "transmission accepted", rec["msg"])
	assert.Equal(t, "abc", rec["transmission_id"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNewNope(t *testing.T) {
	log := NewNope()
	require.NotNil(t, log)
	log.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromLevelName(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantOutput bool
		wantErr    bool
	}{
		{name: "error level logs errors", level: "error", wantOutput: true},
		{name: "off drops everything", level: "off"},
		{name: "none drops everything", level: "NONE"},
		{name: "unknown level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := FromLevelName(&buf, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log.Error("sparkpost request failed")
			assert.Equal(t, tt.wantOutput, buf.Len() > 0)
		})
	}
}
