package note

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/note"
)

var getJSON bool

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		n, err := app.Notes.Get(cmd.Context(), sess, args[0])
		if errors.Is(err, note.ErrNotFound) {
			fmt.Fprintln(output.Writer, "Заметка не найдена")
			return nil
		}
		if err != nil {
			return err
		}

		if getJSON {
			return output.JSON(n)
		}
		printNote(n)
		return nil
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getJSON, "json", false, "вывод в формате JSON")
}
