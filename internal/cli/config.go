package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration resolved from flags, environment
// variables (STARCHASE_*), and an optional config file.
type Config struct {
	ServerURL   string `mapstructure:"server_url"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	StorageType string `mapstructure:"storage_type"`
	RedisURL    string `mapstructure:"redis_url"`
	LogLevel    string `mapstructure:"log_level"`
}

// loadConfig resolves configuration with flag > env > file > default
// precedence.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("storage_type", "memory")
	v.SetDefault("redis_url", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("starchase")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("starchase")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.starchase")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Dashed flag names map onto underscore config keys
	bindings := map[string]string{
		"server_url":   "server",
		"host":         "host",
		"port":         "port",
		"storage_type": "storage-type",
		"redis_url":    "redis-url",
		"log_level":    "log-level",
	}
	for key, flagName := range bindings {
		if f := flags.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
