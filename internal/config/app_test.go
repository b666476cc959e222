package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, mines.DefaultWidth, cfg.Width)
	assert.Equal(t, mines.DefaultHeight, cfg.Height)
	assert.Equal(t, -1, cfg.Mines)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.False(t, cfg.Dev)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-width", "16", "-height", "12", "-mines", "40",
		"-seed", "7", "-log-file", "mines.log", "-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, mines.GameParams{Width: 16, Height: 12, MineCount: 40}, cfg.GameParams(cfg.Mines))
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "mines.log", cfg.LogFile)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_WIDTH", "5")
	t.Setenv("MINESWEEPER_LOG_LEVEL", "error")
	t.Setenv("MINESWEEPER_DEVELOPMENT", "true")

	cfg, err := Parse([]string{"-height", "4"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Dev)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.conf")
	require.NoError(t, os.WriteFile(path, []byte("width 20\nmines 30\n"), 0o600))

	cfg, err := Parse([]string{"-config", path, "-mines", "25"})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 25, cfg.Mines, "flags take precedence over the file")
}

func TestParseMissingConfigFile(t *testing.T) {
	_, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.conf")})
	assert.NoError(t, err)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"too many mines", []string{"-mines", "82"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"not a number", []string{"-height", "tall"}},
		{"unknown flag", []string{"-difficulty", "hard"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.args)
			assert.Error(t, err)
		})
	}

	_, err := Parse([]string{"-mines", "82"})
	assert.ErrorIs(t, err, mines.ErrInvalidParams)

	_, err = Parse([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
