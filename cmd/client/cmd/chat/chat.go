package chat

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/assistant"
	"travelmate/internal/domain/chat"
)

var currentLocation string

// ChatCmd - переписка с ассистентом Mate
var ChatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Переписка с ассистентом Mate",
	Long: `Mate подсказывает места для поездок с учетом ваших заметок и списка желаний.

Ответы ассистента сохраняются в истории переписки.`,
}

var SendCmd = &cobra.Command{
	Use:     "send <сообщение>",
	Short:   "Отправить сообщение Mate",
	Args:    cobra.MinimumNArgs(1),
	Example: `  travelmate chat send "rekomendasi pantai di Bali dong" --location "Denpasar"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		reply, err := app.Assistant.Send(cmd.Context(), sess, strings.Join(args, " "), currentLocation)
		if err != nil {
			return err
		}

		printMessage(reply)
		return nil
	},
}

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Показать историю переписки",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}
		sess, err := app.CurrentSession(cmd.Context())
		if err != nil {
			return err
		}

		messages, err := app.Assistant.Open(cmd.Context(), sess)
		if err != nil {
			return err
		}

		for _, m := range messages {
			printMessage(m)
		}
		return nil
	},
}

func printMessage(m chat.Message) {
	if m.Role == chat.RoleBot {
		fmt.Fprintf(output.Writer, "%s %s\n", output.Bot("Mate:"), m.Text)
		for _, link := range assistant.MapLinks(m.Text) {
			fmt.Fprintf(output.Writer, "  %s %s\n", output.Dim("карта:"), link)
		}
	} else {
		fmt.Fprintf(output.Writer, "%s %s\n", output.Dim("Kamu:"), m.Text)
	}
}

func init() {
	SendCmd.Flags().StringVarP(&currentLocation, "location", "l", "", "ваше текущее местоположение")
}
