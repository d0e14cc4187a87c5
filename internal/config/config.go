package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration, sourced from the
// environment (with .env support for local runs).
type Config struct {
	Port         string
	OpenAIAPIKey string
	OpenAIModel  string
	LogLevel     string
	LogFormat    string
}

// FallbackMode reports whether chat requests are answered locally.
// No key is a documented operating mode, not an error.
func (c *Config) FallbackMode() bool {
	return c.OpenAIAPIKey == ""
}

func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return &Config{
		Port:         v.GetString("PORT"),
		OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
		OpenAIModel:  v.GetString("OPENAI_MODEL"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
	}
}
