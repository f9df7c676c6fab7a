package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	appName        = "bereshit"
	configFileName = "config.json"
)

var testConfigPath string

// SetTestConfigPath redirects Load and Save to path. Tests only.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

// ConfigPath returns the config file location,
// $XDG_CONFIG_HOME/bereshit/config.json by default.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName, configFileName)
}

// StateDir returns $XDG_STATE_HOME/bereshit (~/.local/state/bereshit).
// Logs live here.
func StateDir() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), appName)
}

// DataDir returns $XDG_DATA_HOME/bereshit (~/.local/share/bereshit).
// The project store lives here.
func DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), appName)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Load reads the config from ConfigPath.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. A missing file yields the defaults;
// keys present in the file override the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Store.Path = expandPath(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UnmarshalJSON accepts a bare boolean ("watch": false) or an object whose
// debounce is a duration string ("150ms") or nanoseconds.
func (w *WatchConfig) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		w.Enabled = enabled
		return nil
	}

	var raw struct {
		Enabled  *bool          `json:"enabled"`
		Debounce json.RawMessage `json:"debounce"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Enabled != nil {
		w.Enabled = *raw.Enabled
	}
	if len(raw.Debounce) == 0 || string(raw.Debounce) == "null" {
		return nil
	}
	d, err := parseDuration(raw.Debounce)
	if err != nil {
		return fmt.Errorf("watch.debounce: %w", err)
	}
	w.Debounce = d
	return nil
}

// MarshalJSON writes the debounce as a duration string.
func (w WatchConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Enabled  bool   `json:"enabled"`
		Debounce string `json:"debounce"`
	}{w.Enabled, w.Debounce.String()})
}

func parseDuration(raw json.RawMessage) (time.Duration, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return time.ParseDuration(s)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid duration %s", string(raw))
	}
	return time.Duration(n), nil
}
