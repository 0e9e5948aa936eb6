package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"travelmate/cmd/client/cmd/types"
	"travelmate/internal/app/client"
	"travelmate/internal/app/client/config"
	"travelmate/internal/domain/session"
	"travelmate/internal/infrastructure/docstore"
	"travelmate/internal/utils/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	log      *slog.Logger
	app      *client.App
	debug    bool
	storeURL string
)

var rootCmd = &cobra.Command{
	Use:   "travelmate",
	Short: "TravelMate - заметки о поездках, список желаний и ассистент Mate",
	Long: `TravelMate - клиент для ведения заметок о поездках и списка мест,
которые хочется посетить.

Ассистент Mate подсказывает, куда поехать, учитывая ваши заметки и список
желаний, а команда trip показывает, на что хватит суммы в месте назначения.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", hint(err))
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if storeURL != "" {
		cfg.StoreURL = storeURL
	}

	if debug {
		log = logger.New(cfg.Env)
	} else {
		log = logger.Quiet()
	}

	app, err = client.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func loadConfig() (*config.Config, error) {
	v := viper.GetViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		v.AddConfigPath(filepath.Join(home, ".travelmate"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load(v)
}

// hint дополняет ошибку подсказкой, что делать дальше
func hint(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return fmt.Errorf("%w. Выполните: travelmate auth login", err)
	case errors.Is(err, docstore.ErrUnavailable):
		return fmt.Errorf("%w. Проверьте STORE_URL или флаг --store", err)
	default:
		return err
	}
}

func init() {
	rootCmd.SetContext(context.Background())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store", "", "URL хранилища документов")
}
