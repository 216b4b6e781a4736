package config

import (
	"path/filepath"
	"testing"
)

func TestSaveToRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	cfg := &Config{
		DefaultPlanner: "work",
		Planners: map[string]string{
			"work": "/tmp/work-planner",
		},
		UI: UIConfig{Accent: "#7C3AED"},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}

	if loaded.DefaultPlanner != "work" {
		t.Errorf("expected default_planner=work, got %q", loaded.DefaultPlanner)
	}
	if loaded.Planners["work"] != "/tmp/work-planner" {
		t.Errorf("expected planners.work, got %v", loaded.Planners)
	}
	if loaded.UI.Accent != "#7C3AED" {
		t.Errorf("expected ui.accent to round-trip, got %q", loaded.UI.Accent)
	}
}

func TestSaveToOmitsEmptySections(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	if err := SaveTo(path, &Config{}); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if loaded.DefaultPlanner != "" || len(loaded.Planners) != 0 || loaded.UI.Accent != "" {
		t.Errorf("expected empty config, got %+v", loaded)
	}
}

func TestSaveToRequiresPath(t *testing.T) {
	if err := SaveTo("  ", &Config{}); err == nil {
		t.Error("expected error for blank path")
	}
}
