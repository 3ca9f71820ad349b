package slot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "coop_slots/internal/api/dto/slot"
	"coop_slots/internal/model"
	"coop_slots/internal/service/simulate"
	"coop_slots/internal/service/spin"
	"coop_slots/pkg/rng"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestHandler() *Handler {
	engine := spin.NewSpinService(model.StandardReelConfig(), spin.WithSource(rng.NewSequence(0)))
	return NewHandler(HandlerDeps{Serv: engine, Sim: simulate.NewSimulationService(engine, nil)})
}

func TestLastBeforeSpin(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()

	h.Last(rec, httptest.NewRequest(http.MethodGet, "/slot/last", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSpinThenLast(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Spin(rec, httptest.NewRequest(http.MethodPost, "/slot/spin", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("spin status = %d", rec.Code)
	}

	var spun dto.OutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &spun); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spun.SpinIndex != 1 || len(spun.Grid) != 3 || len(spun.Stops) != 3 {
		t.Errorf("outcome = %+v", spun)
	}

	rec = httptest.NewRecorder()
	h.Last(rec, httptest.NewRequest(http.MethodGet, "/slot/last", nil))
	var last dto.OutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &last); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if last.SpinIndex != 1 {
		t.Errorf("last index = %d", last.SpinIndex)
	}
}

func TestBurst(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		count  int
	}{
		{name: "clamped high", body: `{"count": 40}`, status: http.StatusOK, count: 10},
		{name: "clamped low", body: `{"count": 0}`, status: http.StatusOK, count: 1},
		{name: "bad body", body: `{"count":`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			rec := httptest.NewRecorder()
			h.Burst(rec, httptest.NewRequest(http.MethodPost, "/slot/burst", strings.NewReader(tt.body)))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}
			var res dto.BurstResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(res.Outcomes) != tt.count {
				t.Errorf("outcomes = %d, want %d", len(res.Outcomes), tt.count)
			}
			if res.Outcomes[len(res.Outcomes)-1].SpinIndex != tt.count {
				t.Errorf("last index = %d", res.Outcomes[len(res.Outcomes)-1].SpinIndex)
			}
		})
	}
}

func TestPutConfig(t *testing.T) {
	h := newTestHandler()
	body := `{
		"reels": [{"strip": ["egg"]}, {"strip": ["egg"]}, {"strip": ["egg"]}, {"strip": ["egg"]}],
		"rows": 1,
		"min_matches": 4,
		"payouts": [{"symbol": "egg", "x3": 1, "x4": 100, "x5": 200}]
	}`

	rec := httptest.NewRecorder()
	h.PutConfig(rec, httptest.NewRequest(http.MethodPut, "/slot/config", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var cfg dto.ConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cfg.Reels) != 4 || cfg.Rows != 3 || cfg.MinMatches != 4 {
		t.Errorf("config = %+v", cfg)
	}

	rec = httptest.NewRecorder()
	h.Spin(rec, httptest.NewRequest(http.MethodPost, "/slot/spin", nil))
	var out dto.OutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 3 ряда по 4 яйца
	if out.TotalPayout != 300 {
		t.Errorf("total = %d, want 300", out.TotalPayout)
	}
}

func TestPutConfigKeepsPayoutsWhenOmitted(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.PutConfig(rec, httptest.NewRequest(http.MethodPut, "/slot/config", strings.NewReader(`{"rows": 5}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var cfg dto.ConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Rows != 5 || len(cfg.Reels) != 3 {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.Payouts) != len(model.AllSymbols()) {
		t.Errorf("payouts = %d", len(cfg.Payouts))
	}
}

func TestPutConfigUnknownSymbol(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.PutConfig(rec, httptest.NewRequest(http.MethodPut, "/slot/config",
		strings.NewReader(`{"reels": [{"strip": ["dragon"]}]}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSimulate(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Simulate(rec, httptest.NewRequest(http.MethodPost, "/slot/simulate",
		strings.NewReader(`{"rounds": 2000, "workers": 4, "seed": 11}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res dto.SimulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Rounds != 2000 || res.Workers != 4 || res.Seed != 11 {
		t.Errorf("response = %+v", res)
	}
	if res.HitRate < 0 || res.HitRate > 100 {
		t.Errorf("hit rate = %v", res.HitRate)
	}

	// боевой движок не крутился
	rec = httptest.NewRecorder()
	h.Last(rec, httptest.NewRequest(http.MethodGet, "/slot/last", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("last status = %d, want 404", rec.Code)
	}
}

func TestSimulateBadRounds(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.Simulate(rec, httptest.NewRequest(http.MethodPost, "/slot/simulate", strings.NewReader(`{"rounds": 0}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
