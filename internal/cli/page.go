package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/ui"
)

var (
	pageIcon        string
	pageRemoveForce bool
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Manage pages",
}

var pageAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		page, err := p.AddPage(args[0], pageIcon)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(page, nil)
			return nil
		}
		fmt.Println(ui.Successf("Added page %s (id %d)", ui.Accent.Render(page.Name), page.ID))
		return nil
	},
}

var pageRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a page and every group on it",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		if !pageRemoveForce && !promptForConfirm(fmt.Sprintf("Delete page %d and every group on it?", id)) {
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

		remaining, err := p.DeletePage(id)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(remaining, &Meta{Count: len(remaining)})
			return nil
		}
		fmt.Println(ui.Successf("Deleted page %d", id))
		return nil
	},
}

var pageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pages in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		pages, err := p.Pages()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(pages, &Meta{Count: len(pages)})
			return nil
		}

		if len(pages) == 0 {
			fmt.Println(ui.Hint("no pages yet"))
			return nil
		}
		tbl := ui.NewTable(3)
		for _, pg := range pages {
			pid := pg.ID
			groups, err := p.Groups(&pid)
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
			name := pg.Name
			if pg.Icon != "" {
				name = pg.Icon + " " + name
			}
			tbl.AddRow(fmt.Sprintf("%d", pg.ID), ui.Accent.Render(name), ui.Count(len(groups), "group", "groups"))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

func init() {
	pageAddCmd.Flags().StringVar(&pageIcon, "icon", "", "Icon shown next to the page name")
	pageRemoveCmd.Flags().BoolVarP(&pageRemoveForce, "force", "f", false, "Delete without prompting")

	pageCmd.AddCommand(pageAddCmd)
	pageCmd.AddCommand(pageRemoveCmd)
	pageCmd.AddCommand(pageListCmd)
	rootCmd.AddCommand(pageCmd)
}
