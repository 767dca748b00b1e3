package config

import (
	"github.com/spf13/viper"
)

// AppConfig is the service configuration. The region table itself is fixed
// and takes no configuration; these knobs only shape the HTTP wrapper.
type AppConfig struct {
	Port      string
	Env       string
	CacheSize int
}

// Load reads app.yaml (if present) with environment-variable overrides and
// falls back to defaults. A missing config file is not an error.
func Load() *AppConfig {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("cache.size", 10000)

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	return &AppConfig{
		Port:      viper.GetString("app.port"),
		Env:       viper.GetString("app.env"),
		CacheSize: viper.GetInt("cache.size"),
	}
}
