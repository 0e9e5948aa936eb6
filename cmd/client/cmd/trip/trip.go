package trip

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmate/cmd/client/cmd/output"
	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/domain/trip"
)

var (
	destination string
	amount      string
	withComment bool
	checkJSON   bool
)

// TripCmd - проверка поездки: на что хватит денег в месте назначения
var TripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Проверить поездку",
}

var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Пересчитать сумму в валюту места назначения",
	Long: `Определяет место назначения, его часовой пояс и валюту, пересчитывает
сумму из базовой валюты и показывает местное время.

С флагом --comment Mate коротко прокомментирует, на что хватит денег.`,
	Example: `  travelmate trip check --to "Tokyo" --amount 1500000 --comment`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		value, err := trip.ParseAmount(amount)
		if err != nil {
			return err
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		res, err := app.Trip.Check(cmd.Context(), trip.Request{
			Destination: destination,
			Amount:      value,
			WithComment: withComment,
		})
		if err != nil {
			return err
		}

		if checkJSON {
			return output.JSON(res)
		}

		w := output.Writer
		fmt.Fprintf(w, "Место: %s\n", res.PlaceName)
		fmt.Fprintf(w, "Карта: %s\n", res.Coordinate.MapsURL())
		fmt.Fprintf(w, "Часовой пояс: %s (%s)\n", output.OrDash(res.Timezone), output.OrDash(res.CountryCode))
		fmt.Fprintf(w, "Сумма: %.2f %s = %.2f %s\n", res.Amount, res.BaseCurrency, res.Converted, res.Currency)
		fmt.Fprintf(w, "Местное время: %s\n", res.LocalClock())
		if res.Comment != "" {
			fmt.Fprintf(w, "%s %s\n", output.Bot("Mate:"), res.Comment)
		}
		return nil
	},
}

var SuggestCmd = &cobra.Command{
	Use:   "suggest <запрос>",
	Short: "Подсказать места назначения",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		names, err := app.Trip.Suggest(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(output.Writer, "Ничего не найдено (запрос должен быть длиннее двух символов)")
			return nil
		}

		for _, n := range names {
			fmt.Fprintln(output.Writer, n)
		}
		return nil
	},
}

func init() {
	CheckCmd.Flags().StringVar(&destination, "to", "", "место назначения")
	CheckCmd.Flags().StringVarP(&amount, "amount", "a", "", "сумма в базовой валюте")
	CheckCmd.Flags().BoolVar(&withComment, "comment", false, "добавить комментарий Mate")
	CheckCmd.Flags().BoolVar(&checkJSON, "json", false, "вывод в формате JSON")
	_ = CheckCmd.MarkFlagRequired("to")
	_ = CheckCmd.MarkFlagRequired("amount")
}
