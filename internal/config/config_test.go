package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigGetPlannerPath(t *testing.T) {
	t.Run("named planner", func(t *testing.T) {
		cfg := &Config{
			Planners: map[string]string{
				"work":     "/path/to/work",
				"personal": "/path/to/personal",
			},
		}

		path, err := cfg.GetPlannerPath("work")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/path/to/work" {
			t.Errorf("expected '/path/to/work', got %q", path)
		}
	})

	t.Run("default planner", func(t *testing.T) {
		cfg := &Config{
			DefaultPlanner: "personal",
			Planners: map[string]string{
				"work":     "/path/to/work",
				"personal": "/path/to/personal",
			},
		}

		path, err := cfg.GetPlannerPath("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/path/to/personal" {
			t.Errorf("expected '/path/to/personal', got %q", path)
		}
	})

	t.Run("planner not found", func(t *testing.T) {
		cfg := &Config{
			Planners: map[string]string{
				"work": "/path/to/work",
			},
		}

		_, err := cfg.GetPlannerPath("nonexistent")
		if err == nil {
			t.Error("expected error for nonexistent planner")
		}
	})

	t.Run("no default configured", func(t *testing.T) {
		cfg := &Config{}

		_, err := cfg.GetPlannerPath("")
		if err == nil {
			t.Error("expected error when no default configured")
		}
	})
}

func TestConfigListPlanners(t *testing.T) {
	cfg := &Config{
		Planners: map[string]string{
			"work": "/w",
			"home": "/h",
		},
	}

	got := cfg.ListPlanners()
	if len(got) != 2 || got["work"] != "/w" || got["home"] != "/h" {
		t.Errorf("unexpected planners: %v", got)
	}
}

func TestLoadFrom(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	content := `default_planner = "main"

[planners]
main = "/home/user/planner"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultPlanner != "main" {
		t.Errorf("default_planner = %q", cfg.DefaultPlanner)
	}
	if cfg.Planners["main"] != "/home/user/planner" {
		t.Errorf("planners.main = %q", cfg.Planners["main"])
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("ui.accent = %q", cfg.UI.Accent)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(path, []byte("default_planner = [broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}
