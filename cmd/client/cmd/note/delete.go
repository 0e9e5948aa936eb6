package note

import (
	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить заметку",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Notes.Delete(cmd.Context(), sess, args[0]); err != nil {
			return err
		}

		output.Success("Заметка удалена: %s", args[0])
		return nil
	},
}
