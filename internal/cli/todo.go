package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/ui"
)

var todoMoveOnto int64

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the quick todo list",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a todo at the end of the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		todo, err := p.AddTodo(args[0])
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(todo, nil)
			return nil
		}
		fmt.Println(ui.Successf("Added todo %d", todo.ID))
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a todo's completion",
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

		todo, err := p.ToggleTodo(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if todo == nil {
			return handleErrorMsg(ErrTodoNotFound,
				fmt.Sprintf("todo %d not found", id), "")
		}

		if isJSONOutput() {
			outputSuccess(todo, nil)
			return nil
		}
		state := "open"
		if todo.Completed {
			state = "done"
		}
		fmt.Println(ui.Successf("Todo %d is now %s", id, state))
		return nil
	},
}

var todoRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a todo",
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

		remaining, err := p.DeleteTodo(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(remaining, &Meta{Count: len(remaining)})
			return nil
		}
		fmt.Println(ui.Successf("Deleted todo %d", id))
		return nil
	},
}

var todoMoveCmd = &cobra.Command{
	Use:   "mv <id>",
	Short: "Move a todo onto another todo's position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		if todoMoveOnto <= 0 {
			return handleErrorMsg(ErrMissingArgument, "move target required", "Use --onto <todo-id>")
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		todos, err := p.MoveTodo(id, todoMoveOnto)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(todos, &Meta{Count: len(todos)})
			return nil
		}
		fmt.Println(ui.Successf("Moved todo %d", id))
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		todos, err := p.Todos()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(todos, &Meta{Count: len(todos)})
			return nil
		}
		printTodoList(todos)
		return nil
	},
}

func printTodoList(todos []model.Todo) {
	if len(todos) == 0 {
		fmt.Println(ui.Hint("no todos yet"))
		return
	}
	tbl := ui.NewTable(3)
	for _, td := range todos {
		mark := "[ ]"
		text := td.Text
		if td.Completed {
			mark = "[x]"
			text = ui.Muted.Render(text)
		}
		tbl.AddRow(fmt.Sprintf("%d", td.ID), mark, text)
	}
	fmt.Print(tbl.String())
}

func init() {
	todoMoveCmd.Flags().Int64Var(&todoMoveOnto, "onto", 0, "Todo ID to take the position of")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRemoveCmd)
	todoCmd.AddCommand(todoMoveCmd)
	todoCmd.AddCommand(todoListCmd)
	rootCmd.AddCommand(todoCmd)
}
