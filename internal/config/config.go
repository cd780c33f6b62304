package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the process needs at startup. Every secret is
// loaded exactly once here and handed to constructors by value; nothing
// else in the codebase reads the environment.
type Config struct {
	Port       string
	LogLevel   string
	DBPath     string
	RedisURI   string
	JWTSecret  string
	HashSecret string
	SessionTTL time.Duration
}

const defaultSessionTTL = 24 * time.Hour

// Load reads configs/config.yml plus environment overrides and validates
// that all required values are present. A missing value is a startup
// error — callers are expected to treat it as fatal, never per-request.
func Load() (Config, error) {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// Secrets come from the environment only.
	viper.AutomaticEnv()
	_ = viper.BindEnv("jwt_secret", "JWT_SECRET")
	_ = viper.BindEnv("hash_secret", "HASH_SECRET")
	_ = viper.BindEnv("db.path", "DATABASE_URL")
	_ = viper.BindEnv("redis.uri", "REDIS_URI")

	if err := viper.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Config{
		Port:       viper.GetString("port"),
		LogLevel:   viper.GetString("log.level"),
		DBPath:     viper.GetString("db.path"),
		RedisURI:   viper.GetString("redis.uri"),
		JWTSecret:  viper.GetString("jwt_secret"),
		HashSecret: viper.GetString("hash_secret"),
		SessionTTL: viper.GetDuration("session.ttl"),
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"db.path (or DATABASE_URL)", c.DBPath},
		{"redis.uri (or REDIS_URI)", c.RedisURI},
		{"JWT_SECRET", c.JWTSecret},
		{"HASH_SECRET", c.HashSecret},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("required configuration %s is not set", r.name)
		}
	}
	return nil
}
