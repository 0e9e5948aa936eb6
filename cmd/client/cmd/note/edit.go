package note

import (
	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/note"
)

var editFlags inputFlags

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить заметку",
	Long: `Изменение заметки. Незаданные флаги сохраняют текущие значения,
смена координаты без --location заново определяет название места.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		current, err := app.Notes.Get(cmd.Context(), sess, args[0])
		if err != nil {
			return err
		}

		in := editFlags.apply(cmd, note.Input{
			Title:       current.Title,
			Description: current.Description,
			PhotoURL:    current.PhotoURL,
			Location:    current.Location,
			Coordinate:  current.Coordinate,
		})

		n, err := app.Notes.Edit(cmd.Context(), sess, args[0], in)
		if err != nil {
			return err
		}

		output.Success("Заметка обновлена")
		printNote(n)
		return nil
	},
}

func init() {
	editFlags.bind(EditCmd)
}
