package env

import (
	"errors"
	"fmt"

	"coop_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type redisConfig struct {
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"         envDefault:"0"`
	Prefix        string `env:"REDIS_KEY_PREFIX" envDefault:"coop_slots:"`
}

func NewRedisConfig() (config.RedisConfig, error) {
	var cfg redisConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse redis config: %w", err)
	}
	if len(cfg.RedisAddr) == 0 {
		return nil, errors.New("redis addr not found")
	}

	return &cfg, nil
}

func (cfg *redisConfig) Addr() string      { return cfg.RedisAddr }
func (cfg *redisConfig) Password() string  { return cfg.RedisPassword }
func (cfg *redisConfig) DB() int           { return cfg.RedisDB }
func (cfg *redisConfig) KeyPrefix() string { return cfg.Prefix }
