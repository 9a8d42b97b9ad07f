package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "nft-raffle", cfg.MongoDB.Database)
	assert.Equal(t, 15, cfg.Raffle.DefaultWinnerCount)
	assert.Equal(t, "crypto", cfg.Raffle.RandomSource)
	assert.Equal(t, 24*60*60, cfg.JWT.ExpiresIn)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  port: \"8080\"\nraffle:\n  defaultwinnercount: 3\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Raffle.DefaultWinnerCount)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
