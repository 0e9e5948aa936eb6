package note

import (
	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/note"
)

var addFlags inputFlags

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить заметку",
	Example: `  travelmate note add --title "Bromo" --description "Sunrise dari Penanjakan" --coordinate "-7.94,112.95"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		n, err := app.Notes.Add(cmd.Context(), sess, addFlags.apply(cmd, note.Input{}))
		if err != nil {
			return err
		}

		output.Success("Заметка создана: %s", n.ID)
		printNote(n)
		return nil
	},
}

func init() {
	addFlags.bind(AddCmd)
}
