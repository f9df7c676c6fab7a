package config

import (
	"fmt"
	"time"

	"github.com/marcus/bereshit/internal/project"
)

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

const (
	defaultDateLayout = "02/01/2006 15:04"
	defaultDebounce   = 150 * time.Millisecond
)

// Config is the root configuration structure.
type Config struct {
	Store    StoreConfig    `json:"store"`
	Projects ProjectsConfig `json:"projects"`
	Picker   PickerConfig   `json:"picker"`
	Watch    WatchConfig    `json:"watch"`
	UI       UIConfig       `json:"ui"`
}

// StoreConfig selects where the native executor persists projects.
type StoreConfig struct {
	Driver string `json:"driver"` // "json" or "sqlite"
	Path   string `json:"path"`   // empty: <data dir>/projects.json or projects.db
}

// ProjectsConfig configures project creation.
type ProjectsConfig struct {
	Defaults ProjectDefaults `json:"defaults"`
}

// ProjectDefaults is the config block written into new projects.
type ProjectDefaults struct {
	Version     string `json:"version"`
	ProjectType string `json:"projectType"`
	AutoSave    bool   `json:"autoSave"`
	Theme       string `json:"theme"`
	Language    string `json:"language"`
}

// PickerConfig configures the directory picker.
type PickerConfig struct {
	// Command overrides dialog tool detection. It must print the chosen
	// directory on stdout.
	Command []string `json:"command"`
}

// WatchConfig configures reloading when the store changes on disk.
type WatchConfig struct {
	Enabled  bool          `json:"enabled"`
	Debounce time.Duration `json:"debounce"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool   `json:"showFooter"`
	DateLayout string `json:"dateLayout"`
}

// Default returns the default configuration.
func Default() *Config {
	def := project.DefaultConfig()
	return &Config{
		Store: StoreConfig{
			Driver: DriverJSON,
		},
		Projects: ProjectsConfig{
			Defaults: ProjectDefaults{
				Version:     def.Version,
				ProjectType: def.ProjectType,
				AutoSave:    def.Settings.AutoSave,
				Theme:       def.Settings.Theme,
				Language:    def.Settings.Language,
			},
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: defaultDebounce,
		},
		UI: UIConfig{
			ShowFooter: true,
			DateLayout: defaultDateLayout,
		},
	}
}

// ProjectConfig converts the defaults into a project config block.
func (d ProjectDefaults) ProjectConfig() project.Config {
	return project.Config{
		Version:     d.Version,
		ProjectType: d.ProjectType,
		Settings: project.Settings{
			AutoSave: d.AutoSave,
			Theme:    d.Theme,
			Language: d.Language,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "":
		c.Store.Driver = DriverJSON
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = defaultDebounce
	}
	if c.UI.DateLayout == "" {
		c.UI.DateLayout = defaultDateLayout
	}
	def := project.DefaultConfig()
	if c.Projects.Defaults.Version == "" {
		c.Projects.Defaults.Version = def.Version
	}
	if c.Projects.Defaults.ProjectType == "" {
		c.Projects.Defaults.ProjectType = def.ProjectType
	}
	return nil
}
