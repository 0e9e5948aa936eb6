package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:8080", cfg.StoreURL)
	assert.Equal(t, "relay", cfg.AssistantProvider)
	assert.Equal(t, "IDR", cfg.BaseCurrency)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "demo", cfg.GeoNamesUsername)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 4, cfg.MinPasswordLen)
	assert.False(t, cfg.StrongPasswords)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORE_URL", "https://store.example.com/")
	t.Setenv("BASE_CURRENCY", "usd")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("MIN_PASSWORD_LEN", "10")
	t.Setenv("STRONG_PASSWORDS", "true")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "https://store.example.com", cfg.StoreURL)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, filepath.Join(dir, "data.db"), cfg.DataPath)
	assert.Equal(t, 10, cfg.MinPasswordLen)
	assert.True(t, cfg.StrongPasswords)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assistant_provider: openai\nopenai_model: gpt-4o\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.AssistantProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenaiModel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad currency", key: "BASE_CURRENCY", val: "RUPIAH"},
		{name: "zero timeout", key: "HTTP_TIMEOUT_SECONDS", val: "0"},
		{name: "zero password length", key: "MIN_PASSWORD_LEN", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}
}
