package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the service reads from the environment or an
// optional config file. Environment variables win over file values.
type Config struct {
	Addr         string        `mapstructure:"addr"`
	ProductsPath string        `mapstructure:"products_path"`
	DatabaseURL  string        `mapstructure:"database_url"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`

	JWTSecret         string `mapstructure:"jwt_secret"`
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Load reads configuration from CATALOG_* environment variables, layered
// over an optional config.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("catalog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("products_path", "products.json")
	v.SetDefault("cache_ttl", time.Minute)
	v.SetDefault("admin_username", "admin")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.AdminPasswordHash != "" {
		return nil, fmt.Errorf("jwt_secret is required when admin login is configured")
	}

	return &cfg, nil
}
