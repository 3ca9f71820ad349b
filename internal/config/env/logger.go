package env

import (
	"fmt"

	"coop_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type loggerConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR"`
	LogFile  string `env:"LOG_FILE"  envDefault:"coop_slots"`
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	var cfg loggerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse logger config: %w", err)
	}
	return &cfg, nil
}

func (cfg *loggerConfig) Level() string { return cfg.LogLevel }

// Dir пустая строка - писать только в консоль
func (cfg *loggerConfig) Dir() string  { return cfg.LogDir }
func (cfg *loggerConfig) File() string { return cfg.LogFile }
