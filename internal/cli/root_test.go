package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosim/ecosim/internal/config"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("1.2.3")
	require.NotNil(t, cmd)
	assert.Equal(t, "ecosim", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "simulate")
	assert.Contains(t, names, "analyze")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "audit")
}

func TestRootCmd_InvalidLogFormat(t *testing.T) {
	cmd := NewRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"analyze", "--text", "x",
		"--log-format", "xml",
		"--config", filepath.Join(t.TempDir(), "none.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestConfigFromContext(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		assert.Equal(t, config.Default(), configFromContext(context.Background()))
	})

	t.Run("returns stored config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Server.Addr = ":1234"
		ctx := context.WithValue(context.Background(), configContextKey, cfg)
		assert.Equal(t, cfg, configFromContext(ctx))
	})
}
