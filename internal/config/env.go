package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process configuration read from the environment
type Env struct {
	AppID        string  `env:"SITE_APP_ID" envDefault:"com.preachit.logistics-site"`
	LogLevel     string  `env:"SITE_LOG_LEVEL" envDefault:"info"`
	WindowWidth  float32 `env:"SITE_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight float32 `env:"SITE_WINDOW_HEIGHT" envDefault:"768"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Env{}, fmt.Errorf("parse env: window size must be positive, got %gx%g", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}
