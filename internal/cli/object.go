package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/hierarchy"
	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/store"
	"github.com/umi-app/umi/internal/ui"
)

var (
	objectMoveOnto int64
	objectMoveInto int64
)

var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects",
}

var objectAddCmd = &cobra.Command{
	Use:   "add <group-id> <name>",
	Short: "Add an object at the end of a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		object, err := p.AddObject(groupID, args[1])
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if object == nil {
			return handleErrorMsg(ErrGroupNotFound,
				fmt.Sprintf("group %d not found", groupID),
				"Run 'umi group list' to see groups")
		}

		if isJSONOutput() {
			outputSuccess(object, nil)
			return nil
		}
		fmt.Println(ui.Successf("Added %s (id %d)", ui.Accent.Render(object.Name), object.ID))
		return nil
	},
}

var objectRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename an object",
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

		if err := p.RenameObject(id, args[1]); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "name": args[1]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Renamed object %d to %s", id, ui.Accent.Render(args[1])))
		return nil
	},
}

var objectDurationCmd = &cobra.Command{
	Use:   "duration <id> <blocks>",
	Short: "Set how many 15-minute blocks a placement spans",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		blocks, err := strconv.Atoi(args[1])
		if err != nil {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("invalid block count %q", args[1]),
				"Duration is a number of 15-minute blocks, e.g. 4 for one hour")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		if err := p.SetDefaultDuration(id, blocks); err != nil {
			return handleError(scheduleErrorCode(err), err, scheduleErrorSuggestion(err))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "default_duration": blocks}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Object %d now spans %d blocks (%d min)", id, blocks, blocks*15))
		return nil
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an object with its fields, files and placements",
	Args:    cobra.ExactArgs(1),
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

		remaining, err := p.DeleteObject(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(remaining, &Meta{Count: len(remaining)})
			return nil
		}
		fmt.Println(ui.Successf("Deleted object %d", id))
		return nil
	},
}

var objectMoveCmd = &cobra.Command{
	Use:   "mv <id>",
	Short: "Move an object onto another object or into a group",
	Long: `Moves an object the way a drag gesture would:

  umi object mv 3 --onto 7    take object 7's position (same or other group)
  umi object mv 3 --into 2    append to the end of group 2

A move onto itself or onto a deleted target quietly does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		target := hierarchy.Target{Kind: hierarchy.TargetNone}
		switch {
		case objectMoveOnto > 0 && objectMoveInto > 0:
			return handleErrorMsg(ErrInvalidInput, "--onto and --into are mutually exclusive", "")
		case objectMoveOnto > 0:
			target = hierarchy.Target{Kind: hierarchy.TargetObject, ID: objectMoveOnto}
		case objectMoveInto > 0:
			target = hierarchy.Target{Kind: hierarchy.TargetGroup, ID: objectMoveInto}
		default:
			return handleErrorMsg(ErrMissingArgument, "move target required", "Use --onto <object-id> or --into <group-id>")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		objects, err := p.MoveObject(id, target)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if objects == nil {
			if isJSONOutput() {
				outputSuccessWithWarnings(nil, []Warning{{Code: WarnNoOp, Message: "nothing to move"}}, nil)
				return nil
			}
			fmt.Println(ui.Hint("nothing to move"))
			return nil
		}

		if isJSONOutput() {
			outputSuccess(objects, &Meta{Count: len(objects)})
			return nil
		}
		fmt.Println(ui.Successf("Moved object %d", id))
		return nil
	},
}

var objectListCmd = &cobra.Command{
	Use:   "list <group-id>",
	Short: "List a group's objects in display order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		objects, err := p.ObjectsInGroup(groupID)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(objects, &Meta{Count: len(objects)})
			return nil
		}

		if len(objects) == 0 {
			fmt.Println(ui.Hint("no objects in this group"))
			return nil
		}
		tbl := ui.NewTable(3)
		for _, o := range objects {
			duration := ""
			if o.DefaultDuration > 0 {
				duration = ui.Hint(fmt.Sprintf("%d min", o.DefaultDuration*15))
			}
			tbl.AddRow(fmt.Sprintf("%d", o.ID), ui.Accent.Render(o.Name), duration)
		}
		fmt.Print(tbl.String())
		return nil
	},
}

var objectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an object with its fields and attachments",
	Args:  cobra.ExactArgs(1),
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

		object, err := p.Object(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handleErrorMsg(ErrObjectNotFound,
					fmt.Sprintf("object %d not found", id), "")
			}
			return handleError(ErrDatabaseError, err, "")
		}

		fields, err := p.Fields(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		attachments, err := p.Attachments(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"object":      object,
				"fields":      fields,
				"attachments": attachments,
			}, nil)
			return nil
		}

		printObject(object, fields, attachments)
		return nil
	},
}

func printObject(object *model.Object, fields []model.Field, attachments []model.Attachment) {
	fmt.Println(ui.AccentBold.Render(object.Name))
	if object.DefaultDuration > 0 {
		fmt.Println(ui.Hint(fmt.Sprintf("duration: %d min", object.DefaultDuration*15)))
	}

	display := ui.NewDisplayContext()
	for _, f := range fields {
		fmt.Printf("\n%s\n", ui.Bold.Render(f.Label))
		switch f.Type {
		case model.FieldText:
			rendered, err := ui.RenderMarkdown(f.Value, display.AvailableWidth(ui.MarkdownRenderMargin))
			if err != nil {
				fmt.Println(f.Value)
				continue
			}
			fmt.Print(rendered)
		default:
			fmt.Println(f.Value)
		}
	}

	if len(attachments) > 0 {
		fmt.Printf("\n%s\n", ui.Bold.Render("Attachments"))
		list := ui.NewList()
		for _, a := range attachments {
			list.Add(fmt.Sprintf("%s %s", a.Name, ui.Hint(fmt.Sprintf("(%s, id %d)", a.MimeType, a.ID))))
		}
		fmt.Print(list.String())
	}
}

func init() {
	objectMoveCmd.Flags().Int64Var(&objectMoveOnto, "onto", 0, "Object ID to take the position of")
	objectMoveCmd.Flags().Int64Var(&objectMoveInto, "into", 0, "Group ID to append to")

	objectCmd.AddCommand(objectAddCmd)
	objectCmd.AddCommand(objectRenameCmd)
	objectCmd.AddCommand(objectDurationCmd)
	objectCmd.AddCommand(objectRemoveCmd)
	objectCmd.AddCommand(objectMoveCmd)
	objectCmd.AddCommand(objectListCmd)
	objectCmd.AddCommand(objectShowCmd)
	rootCmd.AddCommand(objectCmd)
}
