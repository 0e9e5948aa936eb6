package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Изменить пароль пользователя",
	Long: `Изменение пароля текущего пользователя.

Требуется текущий пароль. Новый пароль проходит те же проверки, что и при регистрации.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		oldPassword, err := readPassword("Текущий пароль: ")
		if err != nil {
			return err
		}
		newPassword, err := readPassword("Новый пароль: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Повторите новый пароль: ")
		if err != nil {
			return err
		}
		if newPassword != confirm {
			return fmt.Errorf("пароли не совпадают")
		}

		if err := app.Users.ChangePassword(cmd.Context(), sess, oldPassword, newPassword); err != nil {
			return fmt.Errorf("ошибка смены пароля: %w", err)
		}

		output.Success("Пароль изменен")
		return nil
	},
}
