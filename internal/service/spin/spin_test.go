package spin

import (
	"slices"
	"testing"

	"coop_slots/internal/model"
	"coop_slots/pkg/rng"

	"pgregory.net/rapid"
)

func singleSymbolReels(symbols ...model.Symbol) []model.Reel {
	reels := make([]model.Reel, len(symbols))
	for i, s := range symbols {
		reels[i] = model.NewReel([]model.Symbol{s}, model.NeutralBias())
	}
	return reels
}

func TestSpinOnceAllStopsZero(t *testing.T) {
	strip := []model.Symbol{model.Egg, model.Egg, model.Egg, model.Hen, model.Corn}
	cfg := model.NewReelConfig([]model.Reel{
		model.NewReel(strip, model.NeutralBias()),
		model.NewReel(strip, model.NeutralBias()),
		model.NewReel(strip, model.NeutralBias()),
	}, 3, 3)
	engine := NewSpinService(cfg, WithSource(rng.NewSequence(0)))

	out := engine.SpinOnce()

	if !slices.Equal(out.Stops, []int{0, 0, 0}) {
		t.Fatalf("stops = %v", out.Stops)
	}
	for r, row := range out.Grid {
		if !slices.Equal(row, []model.Symbol{model.Egg, model.Egg, model.Egg}) {
			t.Errorf("row %d = %v", r, row)
		}
	}

	want := model.StandardPayoutTable().Payout(model.Egg, 3)
	if len(out.WinLines) != 3 {
		t.Fatalf("win lines = %d, want 3", len(out.WinLines))
	}
	for r, l := range out.WinLines {
		if l.Row != r || l.Symbol != model.Egg || l.Count != 3 || l.Payout != want {
			t.Errorf("line %d = %+v", r, l)
		}
	}
	if out.TotalPayout != 3*want {
		t.Errorf("total = %d, want %d", out.TotalPayout, 3*want)
	}
}

func TestLastQualifyingRunWins(t *testing.T) {
	tests := []struct {
		name       string
		row        []model.Symbol
		minMatches int
		wantLine   bool
		wantSymbol model.Symbol
		wantCount  int
	}{
		{
			name:       "two runs keep the later one",
			row:        []model.Symbol{model.Egg, model.Egg, model.Egg, model.Hen, model.Hen, model.Hen},
			minMatches: 3,
			wantLine:   true, wantSymbol: model.Hen, wantCount: 3,
		},
		{
			name:       "earlier longer run is still discarded",
			row:        []model.Symbol{model.Barn, model.Barn, model.Barn, model.Barn, model.Egg, model.Egg, model.Egg},
			minMatches: 3,
			wantLine:   true, wantSymbol: model.Egg, wantCount: 3,
		},
		{
			name:       "run ending before a change",
			row:        []model.Symbol{model.Corn, model.Corn, model.Corn, model.Hat},
			minMatches: 3,
			wantLine:   true, wantSymbol: model.Corn, wantCount: 3,
		},
		{
			name:       "later short run does not override",
			row:        []model.Symbol{model.Hat, model.Hat, model.Hat, model.Egg, model.Egg},
			minMatches: 3,
			wantLine:   true, wantSymbol: model.Hat, wantCount: 3,
		},
		{
			name:       "run below min matches",
			row:        []model.Symbol{model.Hat, model.Hat, model.Hat, model.Egg},
			minMatches: 4,
			wantLine:   false,
		},
		{
			name:       "six in a row counts six",
			row:        []model.Symbol{model.Hen, model.Hen, model.Hen, model.Hen, model.Hen, model.Hen},
			minMatches: 3,
			wantLine:   true, wantSymbol: model.Hen, wantCount: 6,
		},
	}
	table := model.StandardPayoutTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := evaluateRows([][]model.Symbol{tt.row}, tt.minMatches, table)
			if !tt.wantLine {
				if len(lines) != 0 {
					t.Fatalf("lines = %+v, want none", lines)
				}
				return
			}
			if len(lines) != 1 {
				t.Fatalf("lines = %+v, want exactly one", lines)
			}
			l := lines[0]
			if l.Symbol != tt.wantSymbol || l.Count != tt.wantCount {
				t.Errorf("line = %+v", l)
			}
			if l.Payout != table.Payout(tt.wantSymbol, tt.wantCount) {
				t.Errorf("payout = %d", l.Payout)
			}
		})
	}
}

func TestSpinOnceTwoRunsInRow(t *testing.T) {
	reels := singleSymbolReels(model.Egg, model.Egg, model.Egg, model.Hen, model.Hen, model.Hen)
	engine := NewSpinService(model.NewReelConfig(reels, 3, 3), WithSource(rng.NewSeeded(1)))

	out := engine.SpinOnce()
	if len(out.WinLines) != 3 {
		t.Fatalf("win lines = %d, want one per row", len(out.WinLines))
	}
	for _, l := range out.WinLines {
		if l.Symbol != model.Hen || l.Count != 3 {
			t.Errorf("line = %+v, want hen x3", l)
		}
	}
}

func TestSpinBurstClamp(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{11, 10},
		{1000, 10},
	}
	for _, tt := range tests {
		engine := NewSpinService(model.StandardReelConfig(), WithSource(rng.NewSeeded(7)))
		got := engine.SpinBurst(tt.count)
		if len(got) != tt.want {
			t.Errorf("SpinBurst(%d) = %d outcomes, want %d", tt.count, len(got), tt.want)
		}
		if engine.SpinIndex() != tt.want {
			t.Errorf("SpinBurst(%d) spin index = %d", tt.count, engine.SpinIndex())
		}
		last, ok := engine.LastOutcome()
		if !ok || !slices.Equal(last.Stops, got[len(got)-1].Stops) {
			t.Errorf("SpinBurst(%d) last outcome not stored", tt.count)
		}
	}
}

func TestLastOutcomeBeforeSpin(t *testing.T) {
	engine := NewSpinService(model.StandardReelConfig())
	if _, ok := engine.LastOutcome(); ok {
		t.Error("expected no outcome before the first spin")
	}
	if engine.Spinning() {
		t.Error("engine must not be spinning")
	}
	engine.SpinOnce()
	if engine.Spinning() {
		t.Error("spinning flag must be cleared after a spin")
	}
}

func TestApplyConfigNormalizes(t *testing.T) {
	engine := NewSpinService(model.StandardReelConfig())
	engine.ApplyConfig(model.ReelConfig{
		Reels: []model.Reel{{Strip: nil, Bias: model.Bias{CommonBoost: -1}}},
		Rows:  1,
	})
	cfg := engine.Config()
	if cfg.Rows != 3 || cfg.MinMatches != 3 || cfg.Columns() != 1 {
		t.Fatalf("cfg = rows %d, min %d, cols %d", cfg.Rows, cfg.MinMatches, cfg.Columns())
	}
	if len(cfg.Reels[0].Strip) != 24 || cfg.Reels[0].Bias.CommonBoost != 0 {
		t.Errorf("reel = %+v", cfg.Reels[0])
	}

	out := engine.SpinOnce()
	if len(out.Grid) != 3 || len(out.Grid[0]) != 1 {
		t.Errorf("grid dims = %dx%d", len(out.Grid), len(out.Grid[0]))
	}
}

func TestApplyPayoutTable(t *testing.T) {
	reels := singleSymbolReels(model.Corn, model.Corn, model.Corn)
	engine := NewSpinService(model.NewReelConfig(reels, 3, 3),
		WithPayoutTable(model.NewPayoutTable([]model.PayoutRow{model.NewPayoutRow(model.Corn, 100, 200, 300)})))

	if got := engine.SpinOnce().TotalPayout; got != 300 {
		t.Fatalf("total = %d, want 300", got)
	}

	engine.ApplyPayoutTable(model.PayoutTable{})
	want := 3 * model.StandardPayoutTable().Payout(model.Corn, 3)
	if got := engine.SpinOnce().TotalPayout; got != want {
		t.Errorf("total = %d, want %d", got, want)
	}
}

func TestGridCellsComeFromStrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		symbolGen := rapid.SampledFrom(model.AllSymbols())
		reelCount := rapid.IntRange(1, 6).Draw(t, "reels")
		reels := make([]model.Reel, reelCount)
		for i := range reels {
			strip := rapid.SliceOfN(symbolGen, 1, 30).Draw(t, "strip")
			bias := model.NewBias(rapid.IntRange(0, 3).Draw(t, "boost"), rapid.IntRange(0, 3).Draw(t, "cut"))
			reels[i] = model.NewReel(strip, bias)
		}
		rows := rapid.IntRange(0, 6).Draw(t, "rows")
		minMatches := rapid.IntRange(0, 7).Draw(t, "minMatches")
		cfg := model.NewReelConfig(reels, rows, minMatches)

		engine := NewSpinService(cfg, WithSource(rng.NewSeeded(rapid.Int64().Draw(t, "seed"))))
		out := engine.SpinOnce()

		if len(out.Grid) != cfg.Rows {
			t.Fatalf("rows = %d, want %d", len(out.Grid), cfg.Rows)
		}
		total := 0
		for r, row := range out.Grid {
			if len(row) != reelCount {
				t.Fatalf("row %d has %d columns, want %d", r, len(row), reelCount)
			}
			for c, sym := range row {
				strip := cfg.Reels[c].Strip
				if !slices.Contains(strip, sym) {
					t.Fatalf("cell [%d][%d] = %s not on strip", r, c, sym)
				}
				if sym != strip[(out.Stops[c]+r)%len(strip)] {
					t.Fatalf("cell [%d][%d] does not follow the strip from stop %d", r, c, out.Stops[c])
				}
			}
		}
		for _, l := range out.WinLines {
			if l.Count < cfg.MinMatches || l.Payout < 0 {
				t.Fatalf("bad line %+v", l)
			}
			total += l.Payout
		}
		if total != out.TotalPayout {
			t.Fatalf("total = %d, sum of lines = %d", out.TotalPayout, total)
		}
	})
}
