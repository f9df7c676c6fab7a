package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSave_PreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Write a config file that includes keys not managed by Save
	initial := []byte(`{
  "recent": ["/home/user/a", "/home/user/b"],
  "customKey": "should survive"
}`)
	if err := os.WriteFile(path, initial, 0644); err != nil {
		t.Fatal(err)
	}

	// Point Save() at our temp file
	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	cfg := Default()
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}

	if _, ok := raw["recent"]; !ok {
		t.Error("Save() deleted 'recent' key from config.json")
	}
	if _, ok := raw["customKey"]; !ok {
		t.Error("Save() deleted 'customKey' from config.json")
	}

	var recent []string
	if err := json.Unmarshal(raw["recent"], &recent); err != nil {
		t.Fatalf("unmarshal recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d recent entries, want 2", len(recent))
	}

	// Verify managed keys are also present
	for _, key := range []string{"store", "projects", "watch", "ui"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Save() did not write %q key", key)
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	cfg := Default()
	cfg.Store.Driver = DriverSQLite
	cfg.Watch.Debounce = 3 * time.Second
	cfg.Picker.Command = []string{"zenity", "--file-selection", "--directory"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Store.Driver != DriverSQLite {
		t.Errorf("driver = %q, want sqlite", loaded.Store.Driver)
	}
	if loaded.Watch.Debounce != 3*time.Second {
		t.Errorf("debounce = %v, want 3s", loaded.Watch.Debounce)
	}
	if len(loaded.Picker.Command) != 3 {
		t.Errorf("picker command = %v", loaded.Picker.Command)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bereshit", "config.json")
	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	written, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if !written {
		t.Fatal("expected config to be written on first run")
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Store.Driver != DriverJSON || !cfg.Watch.Enabled || cfg.Watch.Debounce != defaultDebounce {
		t.Errorf("written config differs from defaults: %+v", cfg)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	// An existing file is left alone.
	if err := os.WriteFile(path, []byte(`{"customKey": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if written {
		t.Error("existing config must not be overwritten")
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"customKey": 1}` {
		t.Errorf("config changed: %s", data)
	}
}
