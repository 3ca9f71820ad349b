package env

import (
	"fmt"
	"strings"

	"coop_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type storageConfig struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	Path          string `env:"SQLITE_PATH"    envDefault:"coop_slots.db"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	var cfg storageConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse storage config: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case config.StorageMemory, config.StorageSQLite, config.StoragePostgres, config.StorageRedis:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return &cfg, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.StorageDriver
}

func (cfg *storageConfig) SQLitePath() string {
	return cfg.Path
}
