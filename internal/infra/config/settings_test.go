package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) *Loader {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o600))
	return NewLoaderWithDir(dir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := NewLoaderWithDir(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, 200*time.Millisecond, s.TickInterval)
	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.VoiceCommand)
	assert.Empty(t, s.Warnings)
}

func TestLoad_ParsesSections(t *testing.T) {
	l := writeSettings(t, `
[timer]
tick_ms = 100

[log]
level = "debug"

[voice]
command = "say"

[store]
dir = "/tmp/timetally-test"
`)
	s, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, s.TickInterval)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "say", s.VoiceCommand)
	assert.Equal(t, "/tmp/timetally-test", s.DataDir)
	assert.Empty(t, s.Warnings)
}

func TestLoad_CollectsUnknownKeyWarnings(t *testing.T) {
	l := writeSettings(t, `
top_level = true

[timer]
tick_ms = 100
cadence = "fast"

[mystery]
value = 1
`)
	s, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [timer]: cadence",
		"unknown key: top_level",
		"unknown section: mystery",
	}, s.Warnings)
	assert.Equal(t, 100*time.Millisecond, s.TickInterval)
}

func TestLoad_MalformedTOML(t *testing.T) {
	l := writeSettings(t, "not [valid toml")
	_, err := l.Load()
	assert.Error(t, err)
}

func TestLoad_IgnoresNonPositiveTick(t *testing.T) {
	l := writeSettings(t, "[timer]\ntick_ms = 0\n")
	s, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, s.TickInterval)
}
