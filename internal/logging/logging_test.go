package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestWriter(t *testing.T) {
	assert.Equal(t, os.Stderr, Writer(config.LogConfig{}))

	w := Writer(config.LogConfig{File: "/tmp/raffle.log", MaxSizeMB: 1})
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, "/tmp/raffle.log", lj.Filename)
}

func TestSetupWriterFiltersByLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWriter(&buf, "warn")
	slog.Info("dropped")
	slog.Warn("kept", "raffleId", "abc")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "abc", entry["raffleId"])
}
