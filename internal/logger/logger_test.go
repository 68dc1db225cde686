package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, New(&buf, "bogus").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "").GetLevel())
}

func TestInit_WritesToFile(t *testing.T) {
	// Not parallel because Init uses package-level state
	dir := t.TempDir()

	l, err := Init(dir, "debug")
	require.NoError(t, err)
	defer Close()

	l.Debug().Msg("hello")
	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello"))
}

func TestOpenRotated_RenamesLargeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o600))

	f, err := openRotated(dir, path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLogPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	LogPanic(New(&buf, "info"), "boom")
	assert.Contains(t, buf.String(), "panic: boom")
	assert.Contains(t, buf.String(), "stack")
}
