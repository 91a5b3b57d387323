package config

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all externally supplied settings. Debug gates stack-trace
// exposure in unclassified error responses.
type Config struct {
	Port           string `mapstructure:"PORT" validate:"required"`
	Debug          bool   `mapstructure:"DEBUG"`
	RateLimitRPS   int    `mapstructure:"RATE_LIMIT_RPS" validate:"min=0"`
	RateLimitBurst int    `mapstructure:"RATE_LIMIT_BURST" validate:"min=0"`
}

// Load reads configuration from APP_-prefixed env vars with an optional
// config.yaml overlay, then validates the result.
func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("RATE_LIMIT_RPS", 0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		logger.Info("loaded config file", zap.String("file", viper.ConfigFileUsed()))
	}

	var cfg Config
	if err := parseStructEnv(&cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return nil, err
	}
	return &cfg, nil
}

// parseStructEnv binds env vars to struct fields using the mapstructure tag
// so AutomaticEnv picks up vars without explicit keys being set elsewhere.
func parseStructEnv(cfg interface{}) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if err := viper.BindEnv(tag); err != nil {
			return err
		}
	}
	return viper.Unmarshal(cfg)
}
