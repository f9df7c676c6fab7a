package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes cfg to ConfigPath. Keys in the existing file that Config does
// not manage are preserved.
func Save(cfg *Config) error {
	path := ConfigPath()

	merged := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(path); err == nil {
		// Unparseable files are overwritten.
		_ = json.Unmarshal(data, &merged)
	}

	managed, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	for k, v := range fields {
		merged[k] = v
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return writeFileAtomic(path, append(out, '\n'))
}

// WriteDefault writes the default config when no config file exists yet.
// It reports whether a file was written.
func WriteDefault() (bool, error) {
	if _, err := os.Stat(ConfigPath()); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking config: %w", err)
	}
	if err := Save(Default()); err != nil {
		return false, err
	}
	return true, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
