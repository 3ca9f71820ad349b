package config

import (
	"time"

	"coop_slots/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Поддерживаемые хранилища сессии
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type GameConfig interface {
	ReelConfig() model.ReelConfig
	PayoutTable() model.PayoutTable
}

type HTTPConfig interface {
	Address() string
}

type StorageConfig interface {
	Driver() string
	SQLitePath() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
	KeyPrefix() string
}

type LoggerConfig interface {
	Level() string
	Dir() string
	File() string
}

// OperatorConfig - ключ подписи токенов оператора. Пустой ключ - защита выключена
type OperatorConfig interface {
	TokenSecretKey() []byte
	TokenDuration() time.Duration
}
