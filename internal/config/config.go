// Package config loads the YAML configuration and applies environment
// overrides. SECRET_KEY must come from the environment or the file; startup
// fails without it.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Static   StaticConfig   `mapstructure:"static"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type LimitsConfig struct {
	RateRPS   float64 `mapstructure:"rate_rps"`
	RateBurst int     `mapstructure:"rate_burst"`
	CacheTTL  int     `mapstructure:"cache_ttl_seconds"`
}

// envOverrides are environment values that take precedence over the file.
type envOverrides struct {
	SecretKey  string `envconfig:"SECRET_KEY"`
	Port       int    `envconfig:"PORT"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if env.SecretKey != "" {
		config.JWT.Secret = env.SecretKey
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.DBHost != "" {
		config.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		config.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		config.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		config.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		config.Database.Name = env.DBName
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	if config.JWT.ExpiryHours == 0 {
		config.JWT.ExpiryHours = 24
	}
	if config.Server.TimeoutSeconds == 0 {
		config.Server.TimeoutSeconds = 30
	}
	if config.Static.Dir == "" {
		config.Static.Dir = "static"
	}
	if config.Limits.RateRPS == 0 {
		config.Limits.RateRPS = 100
	}
	if config.Limits.RateBurst == 0 {
		config.Limits.RateBurst = 200
	}
	if config.Limits.CacheTTL == 0 {
		config.Limits.CacheTTL = 60
	}

	return &config, nil
}
