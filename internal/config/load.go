package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables this service reads, e.g.
// TRACKER_SERVER_PORT maps to the server.port key.
const envPrefix = "TRACKER"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a populated Config or an error when
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the service runnable with zero configuration.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
