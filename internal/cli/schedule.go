package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/ui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Place and move objects on the weekly grid",
}

var schedulePlaceCmd = &cobra.Command{
	Use:   "place <object-id> <day> <time>",
	Short: "Place an object on the grid",
	Long: `Places an object at a 15-minute slot, spanning the object's
default duration:

  umi schedule place 4 mon 09:00

The placement is rejected if it would overlap another item in the
same group, or if the object has no duration set.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		objectID, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		day, err := parseDay(args[1])
		if err != nil {
			return handleErrorMsg(ErrInvalidDay, err.Error(), "Days are mon through sun")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		item, err := p.PlaceScheduleItem(objectID, day, args[2])
		if err != nil {
			return handleError(scheduleErrorCode(err), err, scheduleErrorSuggestion(err))
		}
		if item == nil {
			return handleErrorMsg(ErrObjectNotFound,
				fmt.Sprintf("object %d not found", objectID), "")
		}

		if isJSONOutput() {
			outputSuccess(item, nil)
			return nil
		}
		fmt.Println(ui.Successf("Placed %s on %s at %s (%d min)",
			ui.Accent.Render(item.ObjectName), item.Day, item.Time, item.Duration*15))
		return nil
	},
}

var scheduleMoveCmd = &cobra.Command{
	Use:   "mv <id> <day> <time>",
	Short: "Move a placement to another slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		day, err := parseDay(args[1])
		if err != nil {
			return handleErrorMsg(ErrInvalidDay, err.Error(), "Days are mon through sun")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		if err := p.MoveScheduleItem(id, day, args[2]); err != nil {
			return handleError(scheduleErrorCode(err), err, scheduleErrorSuggestion(err))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "day": day, "time": args[2]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Moved placement %d to %s %s", id, day, args[2]))
		return nil
	},
}

var scheduleResizeCmd = &cobra.Command{
	Use:   "resize <id> <blocks>",
	Short: "Change how many blocks a placement spans",
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

		if err := p.ResizeScheduleItem(id, blocks); err != nil {
			return handleError(scheduleErrorCode(err), err, scheduleErrorSuggestion(err))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "duration": blocks}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Placement %d now spans %d min", id, blocks*15))
		return nil
	},
}

var scheduleRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a placement from the grid",
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

		if err := p.RemoveScheduleItem(id); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Removed placement %d", id))
		return nil
	},
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show <group-id>",
	Short: "Show a group's week as a grid",
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

		items, err := p.ScheduleWeek(groupID)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(items, &Meta{Count: len(items)})
			return nil
		}

		grid := ui.NewWeekGrid(ui.NewDisplayContext(), items)
		fmt.Println(grid.Render())
		return nil
	},
}

func init() {
	scheduleCmd.AddCommand(schedulePlaceCmd)
	scheduleCmd.AddCommand(scheduleMoveCmd)
	scheduleCmd.AddCommand(scheduleResizeCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	rootCmd.AddCommand(scheduleCmd)
}
