package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя.

После регистрации сессия открывается автоматически.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(output.Writer, "=== Регистрация нового пользователя ===")
		fmt.Fprintln(output.Writer)

		login, err := readLine("Login: ")
		if err != nil {
			return err
		}
		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Повторите пароль: ")
		if err != nil {
			return err
		}

		u, err := app.Register(cmd.Context(), login, password, confirm)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Fprintln(output.Writer)
		output.Success("Регистрация успешно завершена! Ваш ID: %s", u.ID)
		return nil
	},
}
