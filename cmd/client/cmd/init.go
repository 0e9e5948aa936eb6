package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"travelmate/cmd/client/cmd/auth"
	"travelmate/cmd/client/cmd/chat"
	"travelmate/cmd/client/cmd/note"
	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/status"
	"travelmate/cmd/client/cmd/trip"
	"travelmate/cmd/client/cmd/wish"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент TravelMate",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию данных и конфигурационный файл
	2. Проверяет соединение с хранилищем`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(output.Writer, "=== Инициализация TravelMate ===")
		fmt.Fprintln(output.Writer)

		path := filepath.Join(cfg.DataDir, "config.yaml")
		v := viper.New()
		v.Set("store_url", cfg.StoreURL)
		v.Set("project_id", cfg.ProjectID)
		v.Set("assistant_provider", cfg.AssistantProvider)
		v.Set("assistant_url", cfg.AssistantURL)
		v.Set("base_currency", cfg.BaseCurrency)

		var exists viper.ConfigFileAlreadyExistsError
		switch err := v.SafeWriteConfigAs(path); {
		case err == nil:
			output.Success("Конфигурация сохранена: %s", path)
		case errors.As(err, &exists):
			fmt.Fprintf(output.Writer, "Конфигурация уже существует: %s\n", path)
		default:
			return fmt.Errorf("ошибка сохранения конфигурации: %w", err)
		}

		fmt.Fprintln(output.Writer, "Проверка соединения с хранилищем...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			output.Warn("не удалось подключиться к хранилищу: %v", err)
		} else {
			output.Success("Соединение с хранилищем установлено")
		}

		fmt.Fprintln(output.Writer)
		fmt.Fprintln(output.Writer, "Что дальше:")
		fmt.Fprintln(output.Writer, "1. Зарегистрируйтесь: travelmate auth register")
		fmt.Fprintln(output.Writer, "2. Добавьте первую заметку: travelmate note add --title Bromo")
		fmt.Fprintln(output.Writer, "3. Спросите Mate: travelmate chat send \"ke mana ya?\"")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(status.StatusCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoAmICmd)
	auth.AuthCmd.AddCommand(auth.ChangePasswordCmd)

	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.AddCmd, note.ListCmd, note.GetCmd, note.EditCmd, note.DeleteCmd)

	rootCmd.AddCommand(wish.WishCmd)
	wish.WishCmd.AddCommand(wish.AddCmd, wish.ListCmd, wish.GetCmd, wish.EditCmd, wish.DeleteCmd)

	rootCmd.AddCommand(chat.ChatCmd)
	chat.ChatCmd.AddCommand(chat.SendCmd, chat.HistoryCmd)

	rootCmd.AddCommand(trip.TripCmd)
	trip.TripCmd.AddCommand(trip.CheckCmd, trip.SuggestCmd)
}
