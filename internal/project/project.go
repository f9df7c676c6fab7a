// Package project defines the project record shared by the UI, the command
// gateway and the native executor.
package project

import (
	"strings"
	"time"
)

// Default values written into the config block of new projects.
const (
	DefaultVersion     = "1.0.0"
	DefaultProjectType = "bereshit"
	DefaultTheme       = "dark"
	DefaultLanguage    = "pt-BR"

	// ConfigFileName is the per-project config file created inside the
	// project folder.
	ConfigFileName = "bereshit.json"
)

// Project is a persisted project record. ID is assigned by the executor.
type Project struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Path         string  `json:"path"`
	CreatedAt    string  `json:"created_at"`
	LastModified string  `json:"last_modified"`
	Description  *string `json:"description"`
	Config       Config  `json:"config"`
}

// Config is the nested configuration block of a project.
type Config struct {
	Version     string   `json:"version"`
	ProjectType string   `json:"project_type"`
	Settings    Settings `json:"settings"`
}

// Settings holds user-facing project settings.
type Settings struct {
	AutoSave bool   `json:"auto_save"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultConfig returns the config block given to new projects.
func DefaultConfig() Config {
	return Config{
		Version:     DefaultVersion,
		ProjectType: DefaultProjectType,
		Settings: Settings{
			AutoSave: true,
			Theme:    DefaultTheme,
			Language: DefaultLanguage,
		},
	}
}

// DescriptionText returns the description or "" when absent.
func (p Project) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// Created parses CreatedAt. Malformed timestamps yield the zero time.
func (p Project) Created() time.Time { return parseTimestamp(p.CreatedAt) }

// Modified parses LastModified. Malformed timestamps yield the zero time.
func (p Project) Modified() time.Time { return parseTimestamp(p.LastModified) }

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Timestamp formats t the way records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// CreateData is the transient input of the creation form.
type CreateData struct {
	Name        string
	Path        string
	Description string
}

// Normalized returns a copy with every field trimmed.
func (d CreateData) Normalized() CreateData {
	return CreateData{
		Name:        strings.TrimSpace(d.Name),
		Path:        strings.TrimSpace(d.Path),
		Description: strings.TrimSpace(d.Description),
	}
}

// OptionalDescription returns nil for an empty (trimmed) description.
func (d CreateData) OptionalDescription() *string {
	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		return nil
	}
	return &desc
}
