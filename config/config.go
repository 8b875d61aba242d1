package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddress string        `env:"LISTEN_ADDRESS" envDefault:":8080"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout   time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout  time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout   time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	Redis     Redis
	RateLimit RateLimit
}

type Redis struct {
	Enabled bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	TTL     time.Duration `env:"REDIS_CACHE_TTL" envDefault:"24h"`
}

type RateLimit struct {
	Capacity      int           `env:"RATE_LIMIT_CAPACITY" envDefault:"30"`
	Window        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	SweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL" envDefault:"30m"`
	IdleEviction  time.Duration `env:"RATE_LIMIT_IDLE_EVICTION" envDefault:"1h"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
