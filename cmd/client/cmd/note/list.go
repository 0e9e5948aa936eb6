package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/note"
)

var (
	listFormat string
	listSort   string
	listSearch string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long: `Просмотр заметок текущего пользователя.

По умолчанию сначала новые, --sort title сортирует по заголовку.
--search ищет подстроку в заголовке, описании и месте без учета регистра.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := output.ValidFormat(listFormat); err != nil {
			return err
		}

		opts := note.ListOptions{Term: listSearch}
		switch listSort {
		case "newest":
		case "title":
			opts.Order = note.ByTitle
		default:
			return fmt.Errorf("неизвестная сортировка: %s (newest, title)", listSort)
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		notes, err := app.Notes.List(cmd.Context(), sess, opts)
		if err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		switch listFormat {
		case output.FormatJSON:
			return output.JSON(notes)
		case output.FormatTable:
			return printTable(notes)
		default:
			printSimple(notes)
			return nil
		}
	},
}

func printSimple(notes []note.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(output.Writer, "Заметки не найдены")
		return
	}

	fmt.Fprintf(output.Writer, "Найдено заметок: %d\n\n", len(notes))
	for i, n := range notes {
		fmt.Fprintf(output.Writer, "%d. %s %s\n", i+1, n.Title, output.Dim("(%s)", output.OrDash(n.Location)))
		fmt.Fprintf(output.Writer, "   ID: %s | Создано: %s\n\n", n.ID, createdAt(n))
	}
}

func printTable(notes []note.Note) error {
	if len(notes) == 0 {
		fmt.Fprintln(output.Writer, "Заметки не найдены")
		return nil
	}

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			n.ID,
			output.Truncate(n.Title, 30),
			output.Truncate(output.OrDash(n.Location), 40),
			createdAt(n),
		})
	}
	if err := output.Table([]string{"ID", "Заголовок", "Место", "Создано"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(output.Writer, "\nВсего заметок: %d\n", len(notes))
	return nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", output.FormatSimple, "формат вывода (simple, table, json)")
	ListCmd.Flags().StringVarP(&listSort, "sort", "s", "newest", "сортировка (newest, title)")
	ListCmd.Flags().StringVarP(&listSearch, "search", "q", "", "поиск по тексту")
}
