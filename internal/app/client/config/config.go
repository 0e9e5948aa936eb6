package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv          = "local"
	defaultStoreURL     = "http://localhost:8080"
	defaultProjectID    = "travelmate-dev"
	defaultConfigDir    = ".travelmate"
	defaultHTTPTimeout  = 30
	defaultProvider     = "relay"
	defaultAssistantURL = "https://h-02-451302.et.r.appspot.com/api/chat"
	defaultOpenaiModel  = "gpt-4o-mini"
	defaultBaseCurrency = "IDR"
	defaultCacheTTL     = 24 * 60 * 60
	defaultMinPassword  = 4
)

type Config struct {
	Env         string        `mapstructure:"app_env"`
	StoreURL    string        `mapstructure:"store_url"`
	ProjectID   string        `mapstructure:"project_id"`
	DataDir     string        `mapstructure:"data_dir"`
	DataPath    string        `mapstructure:"data_path"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout_seconds"`

	AssistantProvider string `mapstructure:"assistant_provider"`
	AssistantURL      string `mapstructure:"assistant_url"`
	OpenaiAPIKey      string `mapstructure:"openai_api_key"`
	OpenaiBaseURL     string `mapstructure:"openai_base_url"`
	OpenaiModel       string `mapstructure:"openai_model"`

	NominatimURL     string `mapstructure:"nominatim_url"`
	GeoNamesURL      string `mapstructure:"geonames_url"`
	GeoNamesUsername string `mapstructure:"geonames_username"`
	RestCountriesURL string `mapstructure:"restcountries_url"`
	ExchangeURL      string `mapstructure:"exchange_url"`
	WorldTimeURL     string `mapstructure:"worldtime_url"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl_seconds"`

	BaseCurrency string `mapstructure:"base_currency"`

	// Требования к паролю при регистрации и смене пароля
	MinPasswordLen  int  `mapstructure:"min_password_len"`
	StrongPasswords bool `mapstructure:"strong_passwords"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает конфигурацию из .env, переменных окружения и ранее прочитанного
// конфигурационного файла v. Переменные окружения важнее файла.
func Load(v *viper.Viper) (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("STORE_URL", defaultStoreURL)
	v.SetDefault("PROJECT_ID", defaultProjectID)
	v.SetDefault("DATA_DIR", "")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)
	v.SetDefault("ASSISTANT_PROVIDER", defaultProvider)
	v.SetDefault("ASSISTANT_URL", defaultAssistantURL)
	v.SetDefault("OPENAI_MODEL", defaultOpenaiModel)
	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEONAMES_URL", "http://api.geonames.org")
	v.SetDefault("GEONAMES_USERNAME", "demo")
	v.SetDefault("RESTCOUNTRIES_URL", "https://restcountries.com")
	v.SetDefault("EXCHANGE_URL", "https://api.exchangerate.host")
	v.SetDefault("WORLDTIME_URL", "https://worldtimeapi.org")
	v.SetDefault("CACHE_TTL_SECONDS", defaultCacheTTL)
	v.SetDefault("BASE_CURRENCY", defaultBaseCurrency)
	v.SetDefault("MIN_PASSWORD_LEN", defaultMinPassword)
	v.SetDefault("STRONG_PASSWORDS", false)

	dataDir := v.GetString("DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		dataDir = filepath.Join(homeDir, defaultConfigDir)
	}

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		StoreURL:    strings.TrimRight(v.GetString("STORE_URL"), "/"),
		ProjectID:   v.GetString("PROJECT_ID"),
		DataDir:     dataDir,
		DataPath:    filepath.Join(dataDir, "data.db"),
		HTTPTimeout: time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,

		AssistantProvider: v.GetString("ASSISTANT_PROVIDER"),
		AssistantURL:      v.GetString("ASSISTANT_URL"),
		OpenaiAPIKey:      v.GetString("OPENAI_API_KEY"),
		OpenaiBaseURL:     v.GetString("OPENAI_BASE_URL"),
		OpenaiModel:       v.GetString("OPENAI_MODEL"),

		NominatimURL:     v.GetString("NOMINATIM_URL"),
		GeoNamesURL:      v.GetString("GEONAMES_URL"),
		GeoNamesUsername: v.GetString("GEONAMES_USERNAME"),
		RestCountriesURL: v.GetString("RESTCOUNTRIES_URL"),
		ExchangeURL:      v.GetString("EXCHANGE_URL"),
		WorldTimeURL:     v.GetString("WORLDTIME_URL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,

		BaseCurrency: strings.ToUpper(v.GetString("BASE_CURRENCY")),

		MinPasswordLen:  v.GetInt("MIN_PASSWORD_LEN"),
		StrongPasswords: v.GetBool("STRONG_PASSWORDS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("store_url не может быть пустым")
	}
	if c.ProjectID == "" {
		return fmt.Errorf("project_id не может быть пустым")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout_seconds должен быть положительным")
	}
	if c.MinPasswordLen < 1 {
		return fmt.Errorf("min_password_len должен быть положительным")
	}
	if len(c.BaseCurrency) != 3 {
		return fmt.Errorf("base_currency должен быть трехбуквенным кодом: %q", c.BaseCurrency)
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
