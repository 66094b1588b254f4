package config

import (
	"fmt"

	"github.com/fintrack/ledger-service/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
	Session  Session      `mapstructure:"session"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Session struct {
	CookieName string `mapstructure:"cookie_name"`
	TTLDays    int    `mapstructure:"ttl_days"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("session.cookie_name", "sessionId")
	viper.SetDefault("session.ttl_days", 7)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
