package wish

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/internal/domain/location"
	"travelmate/internal/domain/wishlist"
)

// WishCmd - родительская команда для списка желаний
var WishCmd = &cobra.Command{
	Use:     "wish",
	Aliases: []string{"wishlist"},
	Short:   "Список мест, которые хочется посетить",
}

type inputFlags struct {
	name       string
	location   string
	coordinate string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "название места")
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "адрес или регион (по умолчанию определяется по координате)")
	cmd.Flags().StringVarP(&f.coordinate, "coordinate", "c", "", "координата \"широта,долгота\"")
}

func (f *inputFlags) apply(cmd *cobra.Command, in wishlist.Input) wishlist.Input {
	changed := cmd.Flags().Changed
	if changed("name") {
		in.PlaceName = f.name
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

func printEntry(e wishlist.Entry) {
	w := output.Writer
	fmt.Fprintf(w, "ID: %s\n", e.ID)
	fmt.Fprintf(w, "Место: %s\n", e.PlaceName)
	fmt.Fprintf(w, "Адрес: %s\n", output.OrDash(e.Location))
	fmt.Fprintf(w, "Координата: %s\n", output.OrDash(e.Coordinate))
	if c, ok := location.ParseCoordinate(e.Coordinate); ok {
		fmt.Fprintf(w, "Карта: %s\n", c.MapsURL())
	}
	fmt.Fprintf(w, "Добавлено: %s\n", createdAt(e))
}

func createdAt(e wishlist.Entry) string {
	if ms, ok := e.CreatedAtMillis(); ok {
		return output.Millis(ms)
	}
	return "-"
}
