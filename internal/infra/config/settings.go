// Package config provides application settings loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// SettingsFileName is the settings file inside the config directory.
const SettingsFileName = "settings.toml"

// Environment overrides for the config and data locations.
const (
	EnvConfigDir = "TIMETALLY_CONFIG_DIR"
	EnvDataDir   = "TIMETALLY_DATA_DIR"
)

// Settings holds application-level configuration. Per-list
// notification settings live in the state itself; these are
// process-level knobs.
// Fields are ordered to minimize memory padding.
type Settings struct {
	LogLevel     string
	VoiceCommand string
	DataDir      string
	Warnings     []string
	TickInterval time.Duration
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		TickInterval: 200 * time.Millisecond,
		LogLevel:     "info",
		DataDir:      defaultDataDir(),
	}
}

// Loader loads settings from a TOML file.
type Loader struct {
	configDir string
}

// NewLoader creates a Loader using the default config directory
// resolution (env override, then XDG, then ~/.config).
func NewLoader() *Loader {
	return &Loader{configDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with an explicit config
// directory. This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{configDir: dir}
}

// Load returns the settings merged over defaults. A missing file
// yields the defaults; unknown keys are collected as warnings.
func (l *Loader) Load() (*Settings, error) {
	s := DefaultSettings()
	if l.configDir == "" {
		return s, nil
	}

	data, err := os.ReadFile(filepath.Join(l.configDir, SettingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	var warnings []string
	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "timer":
			for k, v := range m {
				switch k {
				case "tick_ms":
					if n, ok := asInt(v); ok && n > 0 {
						s.TickInterval = time.Duration(n) * time.Millisecond
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [timer]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if str, ok := v.(string); ok {
						s.LogLevel = str
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "voice":
			for k, v := range m {
				switch k {
				case "command":
					if str, ok := v.(string); ok {
						s.VoiceCommand = str
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [voice]: %s", k))
				}
			}
		case "store":
			for k, v := range m {
				switch k {
				case "dir":
					if str, ok := v.(string); ok && str != "" {
						s.DataDir = str
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	s.Warnings = warnings
	return s, nil
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func defaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "timetally")
}

func defaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "timetally")
}
