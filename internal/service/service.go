package service

import (
	"context"

	"coop_slots/internal/model"
)

type SpinService interface {
	SpinOnce() model.Outcome
	SpinBurst(count int) []model.Outcome
	ApplyConfig(cfg model.ReelConfig)
	ApplyPayoutTable(table model.PayoutTable)
	Config() model.ReelConfig
	PayoutTable() model.PayoutTable
	LastOutcome() (model.Outcome, bool)
	SpinIndex() int
	Spinning() bool
}

type SessionService interface {
	Load(ctx context.Context)
	Save(ctx context.Context, chips, bestWin, spins, wins int) error
	AddChips(ctx context.Context, delta int) error
	SpendChips(ctx context.Context, delta int) (bool, error)
	RecordSpin(ctx context.Context, payout int) error
	ResetAll(ctx context.Context) error
	Snapshot() model.Snapshot
	Status() string
}

type WagerService interface {
	Spin(ctx context.Context, wager model.Wager) (*model.WagerResult, error)
	Burst(ctx context.Context, wager model.Wager, count int) ([]model.WagerResult, error)
	Stats() model.Stats
}

type SimulationService interface {
	Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationReport, error)
}
