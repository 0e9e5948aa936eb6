package status

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/session"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние клиента",
	Long:  `Показывает настройки клиента, доступность хранилища и состояние входа.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		cfg := app.Config()
		w := output.Writer

		fmt.Fprintln(w, "=== Статус TravelMate ===")
		fmt.Fprintf(w, "Окружение: %s\n", cfg.Env)
		fmt.Fprintf(w, "Хранилище: %s (проект %s)\n", cfg.StoreURL, cfg.ProjectID)
		fmt.Fprintf(w, "Данные: %s\n", cfg.DataPath)
		fmt.Fprintf(w, "Ассистент: %s\n", cfg.AssistantProvider)
		fmt.Fprintf(w, "Базовая валюта: %s\n", cfg.BaseCurrency)
		if cfg.RedisAddr != "" {
			fmt.Fprintf(w, "Кэш: redis %s\n", cfg.RedisAddr)
		} else {
			fmt.Fprintln(w, "Кэш: память")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			output.Warn("%v", err)
		} else {
			output.Success("Хранилище доступно")
		}

		state, sess := app.Session.State(cmd.Context())
		if state == session.LoggedIn {
			fmt.Fprintf(w, "Сессия: %s (%s)\n", state, sess.UserID)
		} else {
			fmt.Fprintf(w, "Сессия: %s\n", state)
		}
		return nil
	},
}
