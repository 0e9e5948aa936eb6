package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	DefaultDatabase = "(default)"
)

type Config struct {
	Env     string
	Storage string
	DB      DB
	Server  Server
	Logger  Logger
}

type DB struct {
	DatabaseURI string `mapstructure:"database_uri"`
	Migrations  string `mapstructure:"migrations_path"`
}

type Server struct {
	RunAddress string `mapstructure:"run_address"`
	ProjectID  string `mapstructure:"project_id"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load читает конфигурацию эмулятора из окружения и .env
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", EnvLocal)
	v.SetDefault("RUN_ADDRESS", ":8085")
	v.SetDefault("STORAGE", StorageMemory)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("PROJECT_ID", "travelmate-dev")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Env:     v.GetString("APP_ENV"),
		Storage: v.GetString("STORAGE"),
		DB: DB{
			DatabaseURI: v.GetString("DATABASE_URI"),
			Migrations:  v.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{
			RunAddress: v.GetString("RUN_ADDRESS"),
			ProjectID:  v.GetString("PROJECT_ID"),
		},
		Logger: Logger{LogLevel: v.GetString("LOG_LEVEL")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad паникует, если конфигурацию не удалось загрузить
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI обязателен для хранилища %s", StoragePostgres)
		}
	default:
		return fmt.Errorf("неизвестное хранилище %q", c.Storage)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("RUN_ADDRESS не может быть пустым")
	}
	return nil
}
