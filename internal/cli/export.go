package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/export"
	"github.com/umi-app/umi/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write the planner as YAML files",
	Long: `Writes one YAML file per group plus todos.yaml and pages.yaml.
The files round-trip through 'umi import'. Defaults to the current
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		_, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		files, err := export.Snapshot(st, dir)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(files, &Meta{Count: len(files)})
			return nil
		}
		for _, f := range files {
			fmt.Printf("  %s %s\n", ui.Success("✓"), ui.FilePath(f))
		}
		fmt.Println(ui.Successf("Exported %s", ui.Count(len(files), "file", "files")))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge an exported YAML file back in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			return handleErrorMsg(ErrFileNotFound,
				fmt.Sprintf("file not found: %s", args[0]), "")
		}

		_, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		result, err := export.Restore(st, args[0])
		if err != nil {
			return handleError(ErrImportInvalid, err, "Only files written by 'umi export' can be imported")
		}

		if isJSONOutput() {
			warnings := make([]Warning, 0, len(result.Warnings))
			for _, w := range result.Warnings {
				warnings = append(warnings, Warning{Code: WarnSkippedPlacement, Message: w})
			}
			outputSuccessWithWarnings(map[string]interface{}{"kind": result.Kind}, warnings, nil)
			return nil
		}
		for _, w := range result.Warnings {
			fmt.Println(ui.Warningf("skipped: %s", w))
		}
		fmt.Println(ui.Successf("Imported %s from %s", result.Kind, ui.FilePath(args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
