package env

import (
	"os"
	"path/filepath"
	"testing"

	"coop_slots/internal/config"
	"coop_slots/internal/model"
)

func TestHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("NewHTTPConfig: %v", err)
	}
	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestHTTPConfigRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")
	if _, err := NewHTTPConfig(); err == nil {
		t.Fatal("expected error")
	}
}

func TestStorageConfig(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		want    string
		wantErr bool
	}{
		{name: "default", driver: "", want: config.StorageMemory},
		{name: "sqlite upper case", driver: " SQLite ", want: config.StorageSQLite},
		{name: "redis", driver: "redis", want: config.StorageRedis},
		{name: "unknown", driver: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.driver == "" {
				os.Unsetenv("STORAGE_DRIVER")
			} else {
				t.Setenv("STORAGE_DRIVER", tt.driver)
			}

			cfg, err := NewStorageConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStorageConfig: %v", err)
			}
			if cfg.Driver() != tt.want {
				t.Errorf("driver = %q, want %q", cfg.Driver(), tt.want)
			}
		})
	}
}

func TestPGConfigRequiresDSN(t *testing.T) {
	t.Setenv("PG_DSN", "")
	if _, err := NewPGConfig(); err == nil {
		t.Fatal("expected error for empty dsn")
	}

	t.Setenv("PG_DSN", "postgres://localhost/coop")
	cfg, err := NewPGConfig()
	if err != nil {
		t.Fatalf("NewPGConfig: %v", err)
	}
	if cfg.DSN() != "postgres://localhost/coop" {
		t.Errorf("dsn = %q", cfg.DSN())
	}
}

func TestRedisConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := NewRedisConfig()
	if err != nil {
		t.Fatalf("NewRedisConfig: %v", err)
	}
	if cfg.DB() != 0 || cfg.KeyPrefix() != "coop_slots:" {
		t.Errorf("db = %d, prefix = %q", cfg.DB(), cfg.KeyPrefix())
	}
}

func TestGameConfigMissingFile(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"), false)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	rc := cfg.ReelConfig()
	if rc.Columns() != 3 || rc.Rows != 3 || rc.MinMatches != 3 {
		t.Errorf("reel config = %+v", rc)
	}
	if len(cfg.PayoutTable().Rows) != len(model.AllSymbols()) {
		t.Errorf("payout rows = %d", len(cfg.PayoutTable().Rows))
	}
}

const slotYAML = `
slot:
  rows: 4
  min_matches: 9
  reels:
    - strip: [egg, egg, hen]
      bias:
        common_boost: 1
        rare_cut: 0
    - strip: [corn, barn]
    - {}
  payouts:
    - {symbol: egg, x3: 7, x4: -1, x5: 30}
`

func TestGameConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(slotYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewGameConfigFromYAML(path, false)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	rc := cfg.ReelConfig()
	if rc.Rows != 4 {
		t.Errorf("rows = %d, want 4", rc.Rows)
	}
	if rc.MinMatches != model.MinMatchesMax {
		t.Errorf("min matches = %d, want %d", rc.MinMatches, model.MinMatchesMax)
	}
	if rc.Columns() != 3 {
		t.Fatalf("columns = %d", rc.Columns())
	}
	if got := rc.Reels[0].Strip; len(got) != 3 || got[2] != model.Hen {
		t.Errorf("reel 0 strip = %v", got)
	}
	if rc.Reels[0].Bias.CommonBoost != 1 {
		t.Errorf("reel 0 bias = %+v", rc.Reels[0].Bias)
	}
	if len(rc.Reels[2].Strip) != len(model.StandardStrip()) {
		t.Errorf("empty reel must fall back to standard strip, got %d", len(rc.Reels[2].Strip))
	}

	table := cfg.PayoutTable()
	if table.Payout(model.Egg, 3) != 7 || table.Payout(model.Egg, 4) != 0 || table.Payout(model.Egg, 5) != 30 {
		t.Errorf("egg row = %+v", table.Rows)
	}
	// символа нет в таблице - стандартная формула
	if table.Payout(model.Barn, 3) != model.StandardPayoutTable().Payout(model.Barn, 3) {
		t.Error("missing row must use standard payout")
	}
}

func TestGameConfigWide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(slotYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewGameConfigFromYAML(path, true)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}
	b := cfg.ReelConfig().Reels[0].Bias
	if b.CommonBoost != 2 || b.RareCut != 1 {
		t.Errorf("wide bias = %+v", b)
	}
}

func TestGameConfigBadSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("slot:\n  reels:\n    - strip: [dragon]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGameConfigFromYAML(path, false); err == nil {
		t.Fatal("expected decode error for unknown symbol")
	}
}
