package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the resolved data-file locations and display settings.
// Everything lives under a single data directory: category and attendee
// lists as TOML next to it, the meeting ledger in a hidden subdirectory.
type Config struct {
	DataDir        string
	CategoriesPath string
	RosterPath     string
	DBPath         string

	TickInterval time.Duration
	Currency     string
}

// settings is the optional meetcost.yaml overlay.
type settings struct {
	TickMS   int    `yaml:"tick_ms"`
	Currency string `yaml:"currency"`
}

// New resolves paths under dataDir and applies the optional meetcost.yaml
// overlay. A missing overlay file yields the defaults.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}

	s := settings{}
	payload, err := os.ReadFile(filepath.Join(dataDir, "meetcost.yaml"))
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(payload, &s); err != nil {
			return Config{}, fmt.Errorf("parse settings: %w", err)
		}
	}
	s.setDefaults()
	if err := s.validate(); err != nil {
		return Config{}, fmt.Errorf("validate settings: %w", err)
	}

	return Config{
		DataDir:        dataDir,
		CategoriesPath: filepath.Join(dataDir, "categories.toml"),
		RosterPath:     filepath.Join(dataDir, "attendees.toml"),
		DBPath:         filepath.Join(dataDir, ".meetcost", "meetcost.db"),
		TickInterval:   time.Duration(s.TickMS) * time.Millisecond,
		Currency:       s.Currency,
	}, nil
}

func (s *settings) setDefaults() {
	if s.TickMS == 0 {
		s.TickMS = 100
	}
	if s.Currency == "" {
		s.Currency = "$"
	}
}

func (s *settings) validate() error {
	if s.TickMS < 10 {
		return fmt.Errorf("tick_ms must be at least 10, got %d", s.TickMS)
	}
	return nil
}
