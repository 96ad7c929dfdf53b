package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string        `envconfig:"PORT" default:"5000"`
	Env         string        `envconfig:"ENV" default:"development"`
	DatabaseDSN string        `envconfig:"DATABASE_DSN" default:"root:password@tcp(127.0.0.1:3306)/workflo?parseTime=true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiry   time.Duration `envconfig:"JWT_EXPIRY" default:"1h"`
}

// Load reads configuration from the environment. A missing JWT_SECRET is an
// error: every token this server signs depends on it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
