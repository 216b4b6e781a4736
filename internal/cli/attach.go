package cli

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/umi-app/umi/internal/store"
	"github.com/umi-app/umi/internal/ui"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage files attached to objects",
}

var attachAddCmd = &cobra.Command{
	Use:   "add <object-id> <file>",
	Short: "Attach a file to an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		objectID, err := parseID(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			if os.IsNotExist(err) {
				return handleErrorMsg(ErrFileNotFound,
					fmt.Sprintf("file not found: %s", args[1]), "")
			}
			return handleError(ErrFileReadError, err, "")
		}

		name := filepath.Base(args[1])
		mimeType := mime.TypeByExtension(filepath.Ext(name))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		p, st, err := openPlanner()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer st.Close()

		att, err := p.AttachFile(objectID, name, mimeType, data)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		if att == nil {
			return handleErrorMsg(ErrObjectNotFound,
				fmt.Sprintf("object %d not found", objectID), "")
		}

		if isJSONOutput() {
			outputSuccess(att, nil)
			return nil
		}
		fmt.Println(ui.Successf("Attached %s (%d bytes, id %d)", ui.Accent.Render(att.Name), len(data), att.ID))
		return nil
	},
}

var attachRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an attachment",
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

		if err := p.DeleteAttachment(id); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Deleted attachment %d", id))
		return nil
	},
}

var attachSaveCmd = &cobra.Command{
	Use:   "save <id> <path>",
	Short: "Write an attachment's contents to a file",
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

		att, err := p.Attachment(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handleErrorMsg(ErrAttachmentNotFound,
					fmt.Sprintf("attachment %d not found", id), "")
			}
			return handleError(ErrDatabaseError, err, "")
		}

		if err := os.WriteFile(args[1], att.Data, 0o644); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "path": args[1], "bytes": len(att.Data)}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Wrote %s (%d bytes)", ui.FilePath(args[1]), len(att.Data)))
		return nil
	},
}

func init() {
	attachCmd.AddCommand(attachAddCmd)
	attachCmd.AddCommand(attachRemoveCmd)
	attachCmd.AddCommand(attachSaveCmd)
	rootCmd.AddCommand(attachCmd)
}
