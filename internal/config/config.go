package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort         int           `mapstructure:"APP_PORT"`
	DatabasePath    string        `mapstructure:"DATABASE_PATH"`
	OllamaURL       string        `mapstructure:"OLLAMA_URL"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	PullGracePeriod time.Duration `mapstructure:"PULL_GRACE_PERIOD"`
	ProgressTTL     time.Duration `mapstructure:"PROGRESS_TTL"`
	HistoryLimit    int           `mapstructure:"HISTORY_LIMIT"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/modeldeck.db")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("LOG_LEVEL", "INFO")
	// Grace period given to a freshly launched `ollama serve` before the
	// orchestrator opens the pull stream.
	viper.SetDefault("PULL_GRACE_PERIOD", "2s")
	// Terminal progress records older than this are evicted from the store.
	viper.SetDefault("PROGRESS_TTL", "30m")
	viper.SetDefault("HISTORY_LIMIT", 50)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
