package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts for the planner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		stats, err := st.Stats()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]int{
				"pages":          stats.Pages,
				"groups":         stats.Groups,
				"objects":        stats.Objects,
				"fields":         stats.Fields,
				"attachments":    stats.Attachments,
				"schedule_items": stats.ScheduleItems,
				"todos":          stats.Todos,
			}, nil)
			return nil
		}

		tbl := ui.NewTable(2)
		tbl.AddRow("groups", fmt.Sprintf("%d", stats.Groups))
		tbl.AddRow("objects", fmt.Sprintf("%d", stats.Objects))
		tbl.AddRow("fields", fmt.Sprintf("%d", stats.Fields))
		tbl.AddRow("attachments", fmt.Sprintf("%d", stats.Attachments))
		tbl.AddRow("placements", fmt.Sprintf("%d", stats.ScheduleItems))
		tbl.AddRow("todos", fmt.Sprintf("%d", stats.Todos))
		tbl.AddRow("pages", fmt.Sprintf("%d", stats.Pages))
		fmt.Print(tbl.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
