// Package config handles global Umi configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Umi configuration.
type Config struct {
	// DefaultPlanner is the name of the default planner (from Planners map).
	DefaultPlanner string `toml:"default_planner"`

	// Planners is a map of planner names to directory paths.
	Planners map[string]string `toml:"planners"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// GetPlannerPath returns the directory for a named planner.
// If name is empty, returns the default planner's directory.
func (c *Config) GetPlannerPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultPlanner
	}
	if name == "" {
		return "", fmt.Errorf("no default planner configured")
	}
	if c.Planners != nil {
		if path, ok := c.Planners[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("planner '%s' not found in config", name)
}

// GetDefaultPlannerPath returns the default planner's directory.
func (c *Config) GetDefaultPlannerPath() (string, error) {
	return c.GetPlannerPath("")
}

// ListPlanners returns all configured planners with their paths.
func (c *Config) ListPlanners() map[string]string {
	result := make(map[string]string, len(c.Planners))
	for name, path := range c.Planners {
		result[name] = path
	}
	return result
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/umi/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "umi", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "umi", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Umi Configuration

# Default planner name (must exist in [planners] below)
# default_planner = "personal"

# Named planners (each path is a directory; data lives in <path>/.umi)
# [planners]
# personal = "/path/to/your/planner"
# work = "/path/to/work/planner"

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
