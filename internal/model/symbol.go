package model

import (
	"fmt"
	"strings"
)

// Symbol - вид символа на барабане
type Symbol int

const (
	Rooster Symbol = iota
	Hen
	Chick
	Egg
	Corn
	Barn
	Hat
	Boots
)

type symbolInfo struct {
	id         string
	title      string
	tier       int
	basePayout int
}

// Каталог символов: id, название, тир (1 - частый, 4 - редкий), базовая выплата
var catalog = [...]symbolInfo{
	Rooster: {id: "rooster", title: "Rooster", tier: 4, basePayout: 18},
	Hen:     {id: "hen", title: "Hen", tier: 2, basePayout: 9},
	Chick:   {id: "chick", title: "Chick", tier: 1, basePayout: 4},
	Egg:     {id: "egg", title: "Egg", tier: 1, basePayout: 5},
	Corn:    {id: "corn", title: "Corn", tier: 2, basePayout: 7},
	Barn:    {id: "barn", title: "Barn", tier: 4, basePayout: 22},
	Hat:     {id: "hat", title: "Hat", tier: 3, basePayout: 12},
	Boots:   {id: "boots", title: "Boots", tier: 3, basePayout: 14},
}

// AllSymbols возвращает все символы в порядке каталога
func AllSymbols() []Symbol {
	return []Symbol{Rooster, Hen, Chick, Egg, Corn, Barn, Hat, Boots}
}

func (s Symbol) Valid() bool {
	return s >= Rooster && s <= Boots
}

func (s Symbol) info() symbolInfo {
	if !s.Valid() {
		return symbolInfo{id: "unknown", title: "Unknown", tier: 1, basePayout: 1}
	}
	return catalog[s]
}

// ID - строковый идентификатор символа (используется в конфиге и API)
func (s Symbol) ID() string { return s.info().id }

func (s Symbol) Title() string { return s.info().title }

func (s Symbol) Tier() int { return s.info().tier }

func (s Symbol) BasePayout() int { return s.info().basePayout }

func (s Symbol) String() string { return s.ID() }

// ParseSymbol получает символ по его id, регистр не важен
func ParseSymbol(id string) (Symbol, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range AllSymbols() {
		if catalog[s].id == id {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown symbol %q", id)
}

func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid symbol %d", int(s))
	}
	return []byte(s.ID()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
