package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/config"
	"github.com/umi-app/umi/internal/ui"
)

var (
	configSetDefaultPlanner string
	configSetUIAccent       string
	configSetUICodeTheme    string
	configAddPlanner        []string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"config_path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Config at %s", path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if strings.TrimSpace(path) == "" {
			path = config.DefaultPath()
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"config_path": path}, nil)
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, path, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path":     path,
				"default_planner": loadedCfg.DefaultPlanner,
				"planners":        loadedCfg.ListPlanners(),
				"ui": map[string]string{
					"accent":     loadedCfg.UI.Accent,
					"code_theme": loadedCfg.UI.CodeTheme,
				},
			}, nil)
			return nil
		}

		fmt.Printf("config: %s\n", path)
		if loadedCfg.DefaultPlanner != "" {
			fmt.Printf("default_planner: %s\n", loadedCfg.DefaultPlanner)
		}
		names := make([]string, 0, len(loadedCfg.Planners))
		for name := range loadedCfg.Planners {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s = %s\n", name, loadedCfg.Planners[name])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, path, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := false
		if configSetDefaultPlanner != "" {
			loadedCfg.DefaultPlanner = configSetDefaultPlanner
			changed = true
		}
		if configSetUIAccent != "" {
			loadedCfg.UI.Accent = configSetUIAccent
			changed = true
		}
		if configSetUICodeTheme != "" {
			loadedCfg.UI.CodeTheme = configSetUICodeTheme
			changed = true
		}
		for _, pair := range configAddPlanner {
			name, dir, ok := strings.Cut(pair, "=")
			if !ok {
				return handleErrorMsg(ErrInvalidInput,
					fmt.Sprintf("invalid --add-planner value %q", pair),
					"Use --add-planner name=/path/to/planner")
			}
			if loadedCfg.Planners == nil {
				loadedCfg.Planners = make(map[string]string)
			}
			loadedCfg.Planners[strings.TrimSpace(name)] = strings.TrimSpace(dir)
			changed = true
		}

		if !changed {
			return handleErrorMsg(ErrMissingArgument, "nothing to set", "Pass at least one flag")
		}

		if err := config.SaveTo(path, loadedCfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"config_path": path}, nil)
			return nil
		}
		fmt.Println(ui.Success("Config updated"))
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configSetDefaultPlanner, "default-planner", "", "Set the default planner name")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "accent", "", "Set the UI accent color")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "code-theme", "", "Set the markdown code theme")
	configSetCmd.Flags().StringArrayVar(&configAddPlanner, "add-planner", nil, "Register a planner as name=/path")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
