package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "garbage defaults to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(Config{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecosim.log")
	logger := NewLogger(Config{Level: "info", Format: "json", File: path})

	logger.Info().Str("check", "file-sink").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file-sink")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	tagged := ComponentLogger(base, "engine")
	tagged.Info().Msg("tagged")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "engine", event["component"])
	assert.Equal(t, "tagged", event["message"])
}

func TestContextRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info().Msg("through context")
	assert.Contains(t, buf.String(), "through context")

	// Without an attached logger, events go nowhere but never panic.
	FromContext(context.Background()).Info().Msg("dropped")
	var nilCtx context.Context
	FromContext(nilCtx).Info().Msg("dropped too")
	assert.NotContains(t, buf.String(), "dropped")
}
