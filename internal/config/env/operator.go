package env

import (
	"fmt"
	"time"

	"coop_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type operatorConfig struct {
	Secret   string        `env:"OPERATOR_TOKEN_SECRET"`
	Duration time.Duration `env:"OPERATOR_TOKEN_DURATION" envDefault:"12h"`
}

func NewOperatorConfig() (config.OperatorConfig, error) {
	var cfg operatorConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse operator config: %w", err)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("invalid operator token duration %s", cfg.Duration)
	}
	return &cfg, nil
}

func (cfg *operatorConfig) TokenSecretKey() []byte {
	return []byte(cfg.Secret)
}

func (cfg *operatorConfig) TokenDuration() time.Duration {
	return cfg.Duration
}
