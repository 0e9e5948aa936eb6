package types

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ контекста команды, под которым лежит *client.App
const ClientAppKey contextKey = "app"

// App достает приложение из контекста команды
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
