package model

const (
	MinRows       = 3
	MaxRows       = 100
	MinMatchesMin = 3
	MinMatchesMax = 5
	// Максимальный rareCut
	RareCutMax = 2
)

// Смещения поворота стандартной ленты для трех барабанов по умолчанию
var defaultReelRotations = [...]int{0, 3, 7}

// Стандартная лента из 24 позиций
var standardStrip = []Symbol{
	Chick, Egg, Corn, Hen, Chick, Egg, Corn, Hat,
	Chick, Hen, Egg, Boots, Corn, Hen, Chick, Egg,
	Corn, Hat, Hen, Egg, Chick, Corn, Rooster, Barn,
}

// Bias - смещение выбора остановки барабана
type Bias struct {
	CommonBoost int `json:"common_boost" yaml:"common_boost"` // Доп. вес частым позициям (тир <= 2)
	RareCut     int `json:"rare_cut" yaml:"rare_cut"`         // Урезание редких позиций (тир 4)
}

func NewBias(commonBoost, rareCut int) Bias {
	return Bias{
		CommonBoost: max(0, commonBoost),
		RareCut:     max(0, rareCut),
	}
}

func NeutralBias() Bias { return NewBias(0, 0) }

func CozyBias() Bias { return NewBias(2, 1) }

// Reel - один барабан: лента символов и смещение
type Reel struct {
	Strip []Symbol `json:"strip" yaml:"strip"`
	Bias  Bias     `json:"bias" yaml:"bias"`
}

// NewReel создает барабан. Пустая лента заменяется стандартной
func NewReel(strip []Symbol, bias Bias) Reel {
	if len(strip) == 0 {
		strip = StandardStrip()
	}
	return Reel{
		Strip: append([]Symbol(nil), strip...),
		Bias:  NewBias(bias.CommonBoost, bias.RareCut),
	}
}

// WithExtraWeight - барабан с более "мягким" смещением в сторону частых символов
func (r Reel) WithExtraWeight() Reel {
	return NewReel(r.Strip, NewBias(r.Bias.CommonBoost+1, min(RareCutMax, r.Bias.RareCut+1)))
}

// ReelConfig - конфигурация барабанов
type ReelConfig struct {
	Reels      []Reel `json:"reels" yaml:"reels"`
	Rows       int    `json:"rows" yaml:"rows"`
	MinMatches int    `json:"min_matches" yaml:"min_matches"`
}

// NewReelConfig создает конфигурацию, приводя значения к допустимым:
// rows в [3,100], minMatches в [3,5], пустой список барабанов -> барабаны по умолчанию
func NewReelConfig(reels []Reel, rows, minMatches int) ReelConfig {
	var normalized []Reel
	if len(reels) == 0 {
		normalized = defaultReels()
	} else {
		normalized = make([]Reel, len(reels))
		for i, r := range reels {
			normalized[i] = NewReel(r.Strip, r.Bias)
		}
	}

	return ReelConfig{
		Reels:      normalized,
		Rows:       min(max(MinRows, rows), MaxRows),
		MinMatches: min(max(MinMatchesMin, minMatches), MinMatchesMax),
	}
}

// StandardReelConfig - 3 барабана, 3 ряда, от 3 совпадений
func StandardReelConfig() ReelConfig {
	return NewReelConfig(nil, 3, 3)
}

// WideReelConfig - стандартная конфигурация с усиленными частыми символами
func WideReelConfig() ReelConfig {
	return StandardReelConfig().Wide()
}

// Wide применяет WithExtraWeight ко всем барабанам, ленты не меняются
func (c ReelConfig) Wide() ReelConfig {
	reels := make([]Reel, len(c.Reels))
	for i, r := range c.Reels {
		reels[i] = r.WithExtraWeight()
	}
	return NewReelConfig(reels, c.Rows, c.MinMatches)
}

// Normalize повторно применяет ограничения конструктора.
// Нужен для значений, пришедших из yaml/json/http
func (c ReelConfig) Normalize() ReelConfig {
	return NewReelConfig(c.Reels, c.Rows, c.MinMatches)
}

// Columns - количество барабанов (колонок сетки)
func (c ReelConfig) Columns() int {
	return len(c.Reels)
}

// StandardStrip возвращает копию стандартной ленты
func StandardStrip() []Symbol {
	return append([]Symbol(nil), standardStrip...)
}

// Rotate сдвигает ленту влево на shift позиций (с переносом)
func Rotate(strip []Symbol, shift int) []Symbol {
	out := append([]Symbol(nil), strip...)
	n := len(out)
	if n <= 1 {
		return out
	}
	k := shift % n
	if k < 0 {
		k = -k
	}
	if k == 0 {
		return out
	}
	return append(out[k:], out[:k]...)
}

func defaultReels() []Reel {
	reels := make([]Reel, 0, len(defaultReelRotations))
	for _, shift := range defaultReelRotations {
		reels = append(reels, NewReel(Rotate(standardStrip, shift), NeutralBias()))
	}
	return reels
}
