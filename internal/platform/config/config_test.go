package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/config"
)

func TestNewDefaultsWithoutOverlay(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Fatalf("expected default tick of 100ms, got %s", cfg.TickInterval)
	}
	if cfg.Currency != "$" {
		t.Fatalf("expected default currency, got %q", cfg.Currency)
	}
	if cfg.CategoriesPath != filepath.Join(dir, "categories.toml") {
		t.Fatalf("unexpected categories path: %s", cfg.CategoriesPath)
	}
	if cfg.RosterPath != filepath.Join(dir, "attendees.toml") {
		t.Fatalf("unexpected roster path: %s", cfg.RosterPath)
	}
	if cfg.DBPath != filepath.Join(dir, ".meetcost", "meetcost.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestNewAppliesOverlay(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	overlay := "tick_ms: 250\ncurrency: \"€\"\n"
	if err := os.WriteFile(filepath.Join(dir, "meetcost.yaml"), []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %s", cfg.TickInterval)
	}
	if cfg.Currency != "€" {
		t.Fatalf("expected euro currency, got %q", cfg.Currency)
	}
}

func TestNewRejectsBadOverlay(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "meetcost.yaml"), []byte("tick_ms: 5\n"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("tick below 10ms should fail validation")
	}
	if err := os.WriteFile(filepath.Join(dir, "meetcost.yaml"), []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("malformed overlay should fail")
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data dir should fail")
	}
}
