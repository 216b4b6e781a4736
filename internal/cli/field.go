package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/ui"
)

var fieldType string

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage an object's fields",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <object-id> <label> [value]",
	Short: "Add a field to an object",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		objectID, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		ft := model.FieldType(fieldType)
		if !ft.Valid() {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown field type %q", fieldType),
				"Valid types are text, link and file")
		}
		value := ""
		if len(args) == 3 {
			value = args[2]
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		field, err := p.AddField(objectID, ft, args[1], value)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if field == nil {
			return handleErrorMsg(ErrObjectNotFound,
				fmt.Sprintf("object %d not found", objectID), "")
		}

		if isJSONOutput() {
			outputSuccess(field, nil)
			return nil
		}
		fmt.Println(ui.Successf("Added field %s (id %d)", ui.Accent.Render(field.Label), field.ID))
		return nil
	},
}

var fieldEditCmd = &cobra.Command{
	Use:   "edit <id> <value>",
	Short: "Replace a field's value",
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

		if err := p.UpdateField(id, args[1]); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "value": args[1]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Updated field %d", id))
		return nil
	},
}

var fieldRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a field",
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

		if err := p.DeleteField(id); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Deleted field %d", id))
		return nil
	},
}

func init() {
	fieldAddCmd.Flags().StringVarP(&fieldType, "type", "t", "text", "Field type (text, link, file)")

	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldEditCmd)
	fieldCmd.AddCommand(fieldRemoveCmd)
	rootCmd.AddCommand(fieldCmd)
}
