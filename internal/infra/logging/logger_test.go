package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesFormattedEntries(t *testing.T) {
	l := New(t.TempDir(), slog.LevelDebug)
	defer l.Close()

	l.Info("scheduler", "task started")
	l.Debug("store", "snapshot published")

	content := readLog(t, l)
	assert.Contains(t, content, "[INFO] [scheduler] task started")
	assert.Contains(t, content, "[DEBUG] [store] snapshot published")
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	l := New(t.TempDir(), slog.LevelWarn)
	defer l.Close()

	l.Debug("store", "hidden")
	l.Info("store", "hidden too")
	l.Error("store", "visible")

	content := readLog(t, l)
	assert.NotContains(t, content, "hidden")
	assert.Contains(t, content, "[ERROR] [store] visible")
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("store", "dropped")
	assert.NoError(t, l.Close())
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := New(dir, slog.LevelInfo)
	first.Info("app", "one")
	require.NoError(t, first.Close())

	second := New(dir, slog.LevelInfo)
	second.Info("app", "two")
	require.NoError(t, second.Close())

	content := readLog(t, second)
	assert.Equal(t, 2, strings.Count(content, "\n"))
	assert.Contains(t, content, "one")
	assert.Contains(t, content, "two")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
