package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/internal/domain/location"
	"travelmate/internal/domain/note"
)

// NoteCmd - родительская команда для заметок о поездках
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Заметки о поездках",
	Long:  `Создание, просмотр, поиск, изменение и удаление заметок о поездках.`,
}

type inputFlags struct {
	title       string
	description string
	photo       string
	location    string
	coordinate  string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "заголовок")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "описание")
	cmd.Flags().StringVar(&f.photo, "photo", "", "ссылка на фото")
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "название места (по умолчанию определяется по координате)")
	cmd.Flags().StringVarP(&f.coordinate, "coordinate", "c", "", "координата \"широта,долгота\"")
}

// apply переносит в in только явно заданные флаги
func (f *inputFlags) apply(cmd *cobra.Command, in note.Input) note.Input {
	changed := cmd.Flags().Changed
	if changed("title") {
		in.Title = f.title
	}
	if changed("description") {
		in.Description = f.description
	}
	if changed("photo") {
		in.PhotoURL = f.photo
	}
	if changed("location") {
		in.Location = f.location
	}
	if changed("coordinate") {
		in.Coordinate = f.coordinate
		if !changed("location") {
			in.Location = ""
		}
	}
	return in
}

func printNote(n note.Note) {
	w := output.Writer
	fmt.Fprintf(w, "ID: %s\n", n.ID)
	fmt.Fprintf(w, "Заголовок: %s\n", n.Title)
	fmt.Fprintf(w, "Описание: %s\n", output.OrDash(n.Description))
	fmt.Fprintf(w, "Место: %s\n", output.OrDash(n.Location))
	fmt.Fprintf(w, "Координата: %s\n", output.OrDash(n.Coordinate))
	if c, ok := location.ParseCoordinate(n.Coordinate); ok {
		fmt.Fprintf(w, "Карта: %s\n", c.MapsURL())
	}
	if n.PhotoURL != "" {
		fmt.Fprintf(w, "Фото: %s\n", n.PhotoURL)
	}
	fmt.Fprintf(w, "Создано: %s\n", createdAt(n))
}

func createdAt(n note.Note) string {
	if ms, ok := n.CreatedAtMillis(); ok {
		return output.Millis(ms)
	}
	return "-"
}
