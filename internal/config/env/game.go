package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"coop_slots/internal/config"
	"coop_slots/internal/model"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type gameEnv struct {
	Path string `env:"SLOT_CONFIG_PATH" envDefault:"config.yaml"`
	Wide bool   `env:"SLOT_WIDE"`
}

// slotFile - корень config.yaml
type slotFile struct {
	Slot slotSection `yaml:"slot"`
}

type slotSection struct {
	Wide       bool              `yaml:"wide"`
	Rows       int               `yaml:"rows"`
	MinMatches int               `yaml:"min_matches"`
	Reels      []model.Reel      `yaml:"reels"`
	Payouts    []model.PayoutRow `yaml:"payouts"`
}

type gameConfig struct {
	reels   model.ReelConfig
	payouts model.PayoutTable
}

// NewGameConfig читает путь к файлу и режим wide из окружения
func NewGameConfig() (config.GameConfig, error) {
	var raw gameEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}
	return NewGameConfigFromYAML(raw.Path, raw.Wide)
}

// NewGameConfigFromYAML загружает секцию slot из yaml файла.
// Нет файла - стандартная конфигурация
func NewGameConfigFromYAML(path string, wide bool) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return newGameConfig(slotSection{Wide: wide}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file slotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	file.Slot.Wide = file.Slot.Wide || wide

	return newGameConfig(file.Slot), nil
}

func newGameConfig(s slotSection) *gameConfig {
	reels := model.NewReelConfig(s.Reels, s.Rows, s.MinMatches)
	if s.Wide {
		reels = reels.Wide()
	}

	return &gameConfig{
		reels:   reels,
		payouts: model.NewPayoutTable(s.Payouts),
	}
}

func (cfg *gameConfig) ReelConfig() model.ReelConfig {
	return cfg.reels.Normalize()
}

func (cfg *gameConfig) PayoutTable() model.PayoutTable {
	return model.NewPayoutTable(cfg.payouts.Rows)
}
