// Package config loads the recipe book settings from an optional YAML file
// and RECIPES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"philcali.me/recipebook/internal/api"
	"philcali.me/recipebook/internal/exceptions"
	"philcali.me/recipebook/internal/mealdb"
)

const (
	BackendHTTP     = "http"
	BackendDynamoDB = "dynamodb"
)

type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type DynamoDBConfig struct {
	Table    string `mapstructure:"table"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
	Account  string `mapstructure:"account"`
}

type NotificationsConfig struct {
	TopicArn string `mapstructure:"topic_arn"`
}

type ErrorsConfig struct {
	SurfaceLoad   bool `mapstructure:"surface_load"`
	SurfaceDelete bool `mapstructure:"surface_delete"`
}

type MealDBConfig struct {
	URL     string `mapstructure:"url"`
	Version string `mapstructure:"version"`
	Token   string `mapstructure:"token"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	API           APIConfig           `mapstructure:"api"`
	Store         StoreConfig         `mapstructure:"store"`
	DynamoDB      DynamoDBConfig      `mapstructure:"dynamodb"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Errors        ErrorsConfig        `mapstructure:"errors"`
	MealDB        MealDBConfig        `mapstructure:"mealdb"`
	Log           LogConfig           `mapstructure:"log"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "recipes", "config.yaml")
}

func _setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", api.DefaultBaseURL)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("store.backend", BackendHTTP)
	v.SetDefault("dynamodb.table", "")
	v.SetDefault("dynamodb.region", "")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.account", "default")
	v.SetDefault("notifications.topic_arn", "")
	v.SetDefault("errors.surface_load", false)
	v.SetDefault("errors.surface_delete", false)
	v.SetDefault("mealdb.url", mealdb.DefaultBaseURL)
	v.SetDefault("mealdb.version", "v1")
	v.SetDefault("mealdb.token", "1")
	v.SetDefault("log.level", "info")
}

// Load reads path (or DefaultPath when empty). A missing default file is
// not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	_setDefaults(v)
	v.SetEnvPrefix("RECIPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	file := ""
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else {
			file = path
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = file
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendHTTP:
		if c.API.URL == "" {
			return exceptions.InvalidInput("api.url is required for the http backend")
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return exceptions.InvalidInput("dynamodb.table is required for the dynamodb backend")
		}
	default:
		return exceptions.InvalidInput(fmt.Sprintf("store.backend: %q is invalid (valid values: http, dynamodb)", c.Store.Backend))
	}
	if c.API.Timeout < 0 {
		return exceptions.InvalidInput("api.timeout must not be negative")
	}
	return nil
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
