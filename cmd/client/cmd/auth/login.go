package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Вход по логину и паролю.

Сессия сохраняется локально и используется последующими командами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		login, err := readLine("Login: ")
		if err != nil {
			return err
		}
		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}

		if _, err := app.Login(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		output.Success("Вход выполнен успешно!")
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}
		output.Success("Сессия завершена")
		return nil
	},
}

var WhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		u, err := app.WhoAmI(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(output.Writer, "ID: %s\n", u.ID)
		return nil
	},
}
