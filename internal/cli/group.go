package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/planner"
	"github.com/umi-app/umi/internal/ui"
)

var (
	groupAddPage     int64
	groupListPage    int64
	groupMoveOnto    int64
	groupRemoveForce bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a group at the end of the page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		var pageID *int64
		if groupAddPage > 0 {
			pageID = &groupAddPage
		}

		group, err := p.AddGroup(args[0], pageID)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(group, nil)
			return nil
		}
		fmt.Println(ui.Successf("Added group %s (id %d)", ui.Accent.Render(group.Name), group.ID))
		return nil
	},
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		if err := p.RenameGroup(id, args[1]); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "name": args[1]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Renamed group %d to %s", id, ui.Accent.Render(args[1])))
		return nil
	},
}

var groupRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a group and everything in it",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		if !groupRemoveForce && !promptForConfirm(fmt.Sprintf("Delete group %d with all its objects and placements?", id)) {
			if isJSONOutput() {
				return handleErrorMsg(ErrInvalidInput, "confirmation required", "Pass --force to delete without prompting")
			}
			fmt.Println(ui.Hint("aborted"))
			return nil
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		remaining, err := p.DeleteGroup(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(remaining, &Meta{Count: len(remaining)})
			return nil
		}
		fmt.Println(ui.Successf("Deleted group %d", id))
		return nil
	},
}

var groupMoveCmd = &cobra.Command{
	Use:   "mv <id>",
	Short: "Move a group to another group's position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if groupMoveOnto <= 0 {
			return handleErrorMsg(ErrMissingArgument, "target group required", "Use --onto <group-id>")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		groups, err := p.MoveGroup(id, groupMoveOnto)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if groups == nil {
			if isJSONOutput() {
				outputSuccessWithWarnings(nil, []Warning{{Code: WarnNoOp, Message: "nothing to move"}}, nil)
				return nil
			}
			fmt.Println(ui.Hint("nothing to move"))
			return nil
		}

		if isJSONOutput() {
			outputSuccess(groups, &Meta{Count: len(groups)})
			return nil
		}
		fmt.Println(ui.Successf("Moved group %d", id))
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		var pageID *int64
		if groupListPage > 0 {
			pageID = &groupListPage
		}

		groups, err := p.Groups(pageID)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(groups, &Meta{Count: len(groups)})
			return nil
		}

		if len(groups) == 0 {
			fmt.Println(ui.Hint("no groups yet"))
			return nil
		}
		printGroupTable(p, groups)
		return nil
	},
}

func printGroupTable(p *planner.Planner, groups []model.Group) {
	tbl := ui.NewTable(3)
	for _, g := range groups {
		count := 0
		if objects, err := p.ObjectsInGroup(g.ID); err == nil {
			count = len(objects)
		}
		tbl.AddRow(
			fmt.Sprintf("%d", g.ID),
			ui.Accent.Render(g.Name),
			ui.Hint(ui.Count(count, "object", "objects")),
		)
	}
	fmt.Print(tbl.String())
}

func init() {
	groupAddCmd.Flags().Int64Var(&groupAddPage, "page", 0, "Page ID to add the group to")
	groupListCmd.Flags().Int64Var(&groupListPage, "page", 0, "Page ID to list groups for")
	groupMoveCmd.Flags().Int64Var(&groupMoveOnto, "onto", 0, "Group ID to take the position of")
	groupRemoveCmd.Flags().BoolVarP(&groupRemoveForce, "force", "f", false, "Delete without prompting")

	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRenameCmd)
	groupCmd.AddCommand(groupRemoveCmd)
	groupCmd.AddCommand(groupMoveCmd)
	groupCmd.AddCommand(groupListCmd)
	rootCmd.AddCommand(groupCmd)
}
