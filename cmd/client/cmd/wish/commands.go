package wish

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/app/client"
	"travelmate/internal/domain/session"
	"travelmate/internal/domain/wishlist"
)

var (
	addFlags  inputFlags
	editFlags inputFlags

	listFormat string
	listSort   string
	listSearch string
	getJSON    bool
)

// withSession достает приложение и текущую сессию
func withSession(cmd *cobra.Command) (*client.App, session.Session, error) {
	app, err := types.App(cmd)
	if err != nil {
		return nil, session.Session{}, err
	}
	sess, err := app.CurrentSession(cmd.Context())
	if err != nil {
		return nil, session.Session{}, err
	}
	return app, sess, nil
}

var AddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Добавить место в список желаний",
	Example: `  travelmate wish add --name "Raja Ampat" --coordinate "-0.23,130.52"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, sess, err := withSession(cmd)
		if err != nil {
			return err
		}

		e, err := app.Wishlist.Add(cmd.Context(), sess, addFlags.apply(cmd, wishlist.Input{}))
		if err != nil {
			return err
		}

		output.Success("Место добавлено: %s", e.ID)
		printEntry(e)
		return nil
	},
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список желаний",
	Long: `Просмотр списка желаний текущего пользователя.

По умолчанию сначала новые, --sort name сортирует по названию места.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := output.ValidFormat(listFormat); err != nil {
			return err
		}

		opts := wishlist.ListOptions{Term: listSearch}
		switch listSort {
		case "newest":
		case "name":
			opts.Order = wishlist.ByName
		default:
			return fmt.Errorf("неизвестная сортировка: %s (newest, name)", listSort)
		}

		app, sess, err := withSession(cmd)
		if err != nil {
			return err
		}

		entries, err := app.Wishlist.List(cmd.Context(), sess, opts)
		if err != nil {
			return fmt.Errorf("ошибка получения списка желаний: %w", err)
		}

		switch listFormat {
		case output.FormatJSON:
			return output.JSON(entries)
		case output.FormatTable:
			return printTable(entries)
		default:
			printSimple(entries)
			return nil
		}
	},
}

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать место",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, sess, err := withSession(cmd)
		if err != nil {
			return err
		}

		e, err := app.Wishlist.Get(cmd.Context(), sess, args[0])
		if errors.Is(err, wishlist.ErrNotFound) {
			fmt.Fprintln(output.Writer, "Место не найдено")
			return nil
		}
		if err != nil {
			return err
		}

		if getJSON {
			return output.JSON(e)
		}
		printEntry(e)
		return nil
	},
}

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить место",
	Long:  `Изменение места. Незаданные флаги сохраняют текущие значения.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, sess, err := withSession(cmd)
		if err != nil {
			return err
		}

		current, err := app.Wishlist.Get(cmd.Context(), sess, args[0])
		if err != nil {
			return err
		}

		in := editFlags.apply(cmd, wishlist.Input{
			PlaceName:  current.PlaceName,
			Location:   current.Location,
			Coordinate: current.Coordinate,
		})

		e, err := app.Wishlist.Edit(cmd.Context(), sess, args[0], in)
		if err != nil {
			return err
		}

		output.Success("Место обновлено")
		printEntry(e)
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить место из списка",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, sess, err := withSession(cmd)
		if err != nil {
			return err
		}

		if err := app.Wishlist.Delete(cmd.Context(), sess, args[0]); err != nil {
			return err
		}

		output.Success("Место удалено: %s", args[0])
		return nil
	},
}

func printSimple(entries []wishlist.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(output.Writer, "Список желаний пуст")
		return
	}

	fmt.Fprintf(output.Writer, "Мест в списке: %d\n\n", len(entries))
	for i, e := range entries {
		fmt.Fprintf(output.Writer, "%d. %s %s\n", i+1, e.PlaceName, output.Dim("(%s)", output.OrDash(e.Location)))
		fmt.Fprintf(output.Writer, "   ID: %s | Добавлено: %s\n\n", e.ID, createdAt(e))
	}
}

func printTable(entries []wishlist.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(output.Writer, "Список желаний пуст")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			output.Truncate(e.PlaceName, 30),
			output.Truncate(output.OrDash(e.Location), 40),
			output.OrDash(e.Coordinate),
			createdAt(e),
		})
	}
	return output.Table([]string{"ID", "Место", "Адрес", "Координата", "Добавлено"}, rows)
}

func init() {
	addFlags.bind(AddCmd)
	editFlags.bind(EditCmd)

	ListCmd.Flags().StringVarP(&listFormat, "format", "f", output.FormatSimple, "формат вывода (simple, table, json)")
	ListCmd.Flags().StringVarP(&listSort, "sort", "s", "newest", "сортировка (newest, name)")
	ListCmd.Flags().StringVarP(&listSearch, "search", "q", "", "поиск по названию и адресу")

	GetCmd.Flags().BoolVar(&getJSON, "json", false, "вывод в формате JSON")
}
