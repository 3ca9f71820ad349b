package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"coop_slots/internal/config"
	"coop_slots/internal/config/env"
	"coop_slots/internal/converter"
	"coop_slots/internal/model"
	"coop_slots/internal/service/simulate"
	"coop_slots/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	_ "go.uber.org/automaxprocs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// gameSource отдает конфигурацию из yaml в симулятор
type gameSource struct {
	config.GameConfig
}

func (g gameSource) Config() model.ReelConfig {
	return g.ReelConfig()
}

// Прогон RTP симуляции по config.yaml без запуска сервера
func main() {
	var (
		path    = flag.String("config", "config.yaml", "slot config path")
		wide    = flag.Bool("wide", false, "apply wide bias to every reel")
		rounds  = flag.Int("rounds", 100_000, "number of spins")
		workers = flag.Int("workers", 8, "parallel workers")
		seed    = flag.Int64("seed", 0, "random seed, 0 picks one")
		level   = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	cfg, err := env.NewGameConfigFromYAML(*path, *wide)
	if err != nil {
		log.Fatalf("failed to load slot config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg := logger.New(logger.Config{Level: *level})
	defer func() { _ = lg.Sync() }()

	report, err := simulate.NewSimulationService(gameSource{cfg}, lg).Run(ctx, model.SimulationRequest{
		Rounds:  *rounds,
		Workers: *workers,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	out, err := json.MarshalIndent(converter.ToSimulateResponse(*report), "", "  ")
	if err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
