// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/config"
	"github.com/umi-app/umi/internal/ui"
)

var (
	// Global flags
	plannerName     string // Named planner from config
	plannerPathFlag string // Explicit path (rare)
	configPath      string

	// Resolved values
	resolvedPlannerPath string
	cfg                 *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "umi",
	Short: "Umi - A personal weekly planner",
	Long: `Umi is a personal planner: ordered groups of objects with typed fields,
file attachments, a todo list, and a weekly schedule on a 15-minute grid.

All data lives in a local SQLite database inside the planner directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip planner resolution for commands that don't need it
		switch cmd.Name() {
		case "init", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}

		// Load config
		var err error
		cfg, _, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve planner path: explicit path > named planner > default
		if plannerPathFlag != "" {
			resolvedPlannerPath = plannerPathFlag
		} else if plannerName != "" {
			resolvedPlannerPath, err = cfg.GetPlannerPath(plannerName)
			if err != nil {
				return fmt.Errorf("planner '%s' not found\n\nAdd it under [planners] in %s", plannerName, config.DefaultPath())
			}
		} else {
			resolvedPlannerPath, err = cfg.GetDefaultPlannerPath()
			if err != nil {
				return fmt.Errorf(`no planner specified

Either:
  1. Use --planner <name> (from config)
  2. Use --planner-path /path/to/planner
  3. Set default_planner in ~/.config/umi/config.toml
  4. Run 'umi init /path/to/new/planner' to create one`)
			}
		}

		// Verify planner directory exists
		if _, err := os.Stat(resolvedPlannerPath); os.IsNotExist(err) {
			return fmt.Errorf("planner not found: %s\n\nRun 'umi init %s' to create it", resolvedPlannerPath, resolvedPlannerPath)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&plannerName, "planner", "p", "", "Named planner from config")
	rootCmd.PersistentFlags().StringVar(&plannerPathFlag, "planner-path", "", "Explicit path to planner directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getPlannerPath returns the resolved planner directory.
func getPlannerPath() string {
	return resolvedPlannerPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	var loadedCfg *config.Config
	var err error
	resolvedPath := config.DefaultPath()
	if strings.TrimSpace(configPath) != "" {
		resolvedPath = configPath
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
