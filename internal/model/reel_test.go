package model

import (
	"math"
	"reflect"
	"slices"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

func TestNewReelConfigClamps(t *testing.T) {
	tests := []struct {
		name           string
		rows, matches  int
		wantRows       int
		wantMinMatches int
	}{
		{"below minimum", 1, 0, 3, 3},
		{"in range", 4, 4, 4, 4},
		{"above maximum", 6, 9, 6, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewReelConfig(nil, tt.rows, tt.matches)
			if cfg.Rows != tt.wantRows || cfg.MinMatches != tt.wantMinMatches {
				t.Errorf("got rows=%d minMatches=%d", cfg.Rows, cfg.MinMatches)
			}
		})
	}
}

func TestDefaultReelsAreRotatedStandardStrips(t *testing.T) {
	cfg := StandardReelConfig()
	if cfg.Columns() != 3 {
		t.Fatalf("columns = %d, want 3", cfg.Columns())
	}
	for i, shift := range []int{0, 3, 7} {
		want := Rotate(StandardStrip(), shift)
		if !slices.Equal(cfg.Reels[i].Strip, want) {
			t.Errorf("reel %d strip mismatch", i)
		}
		if cfg.Reels[i].Bias != NeutralBias() {
			t.Errorf("reel %d bias = %+v", i, cfg.Reels[i].Bias)
		}
	}
	if cfg.Reels[1].Strip[0] != Hen {
		t.Errorf("reel 1 must start at strip[3], got %s", cfg.Reels[1].Strip[0])
	}
}

func TestEmptyStripFallsBack(t *testing.T) {
	r := NewReel(nil, NewBias(-3, -1))
	if len(r.Strip) != 24 {
		t.Errorf("strip len = %d, want 24", len(r.Strip))
	}
	if r.Bias.CommonBoost != 0 || r.Bias.RareCut != 0 {
		t.Errorf("bias = %+v, want clamped to 0", r.Bias)
	}
}

func TestWide(t *testing.T) {
	base := NewReelConfig([]Reel{
		NewReel([]Symbol{Egg}, NewBias(0, 0)),
		NewReel([]Symbol{Egg}, NewBias(3, 2)),
	}, 3, 3)
	wide := base.Wide()

	if wide.Reels[0].Bias != NewBias(1, 1) {
		t.Errorf("reel 0 bias = %+v", wide.Reels[0].Bias)
	}
	if wide.Reels[1].Bias != NewBias(4, 2) {
		t.Errorf("reel 1 bias = %+v, rare cut must stay capped at 2", wide.Reels[1].Bias)
	}
	if !slices.Equal(wide.Reels[1].Strip, base.Reels[1].Strip) {
		t.Error("wide must not change strips")
	}
	if WideReelConfig().Reels[0].Bias != NewBias(1, 1) {
		t.Error("WideReelConfig must boost the standard config")
	}
}

func TestRotate(t *testing.T) {
	strip := []Symbol{Egg, Hen, Corn, Hat}
	if got := Rotate(strip, 1); !slices.Equal(got, []Symbol{Hen, Corn, Hat, Egg}) {
		t.Errorf("Rotate(1) = %v", got)
	}
	if got := Rotate(strip, -5); !slices.Equal(got, []Symbol{Hen, Corn, Hat, Egg}) {
		t.Errorf("Rotate(-5) = %v", got)
	}
	if got := Rotate(strip, 4); !slices.Equal(got, strip) {
		t.Errorf("Rotate(4) = %v", got)
	}
	if !slices.Equal(strip, []Symbol{Egg, Hen, Corn, Hat}) {
		t.Error("Rotate must not modify its input")
	}
}

func TestNewReelConfigCapsRows(t *testing.T) {
	cfg := NewReelConfig(nil, math.MaxInt, 3)
	if cfg.Rows != MaxRows {
		t.Errorf("rows = %d, want %d", cfg.Rows, MaxRows)
	}
}

func TestReelConfigSerializationRoundTrip(t *testing.T) {
	cfg := NewReelConfig([]Reel{
		NewReel([]Symbol{Rooster, Hen, Chick}, NewBias(3, 1)),
		NewReel(Rotate(StandardStrip(), 5), CozyBias()),
		NewReel([]Symbol{Barn}, NeutralBias()),
	}, 4, 5)

	t.Run("json", func(t *testing.T) {
		data, err := jsoniter.Marshal(cfg)
		if err != nil {
			t.Fatal(err)
		}
		var got ReelConfig
		if err := jsoniter.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, cfg) {
			t.Errorf("got %+v, want %+v", got, cfg)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			t.Fatal(err)
		}
		var got ReelConfig
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, cfg) {
			t.Errorf("got %+v, want %+v", got, cfg)
		}
	})
}
