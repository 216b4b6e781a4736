package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new planner",
	Long: `Creates a new planner at the specified path.

Creates:
  - .umi/            (data directory)
  - .umi/planner.db  (SQLite database)
  - .gitignore       (ignores the data directory)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fmt.Printf("Initializing planner at: %s\n", path)

		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create planner directory: %w", err)
		}

		// Opening the store creates .umi/ and the database schema.
		st, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("failed to create planner database: %w", err)
		}
		defer st.Close()

		gitignorePath := filepath.Join(path, ".gitignore")
		gitignoreStatus := "created"
		if _, err := os.Stat(gitignorePath); err == nil {
			gitignoreStatus = "kept"
		} else {
			content := `# Umi (auto-generated)
# Local planner database
.umi/
`
			if err := os.WriteFile(gitignorePath, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write .gitignore: %w", err)
			}
		}

		fmt.Println("✓ Created .umi/planner.db")
		switch gitignoreStatus {
		case "created":
			fmt.Println("✓ Created .gitignore")
		default:
			fmt.Println("• .gitignore already exists (kept)")
		}

		fmt.Println("\nPlanner initialized! Add a group with 'umi group add <name>'.")
		fmt.Printf("Tip: register it in %s under [planners] to use it by name.\n", configHint())

		return nil
	},
}

func configHint() string {
	return "~/.config/umi/config.toml"
}

func init() {
	rootCmd.AddCommand(initCmd)
}
