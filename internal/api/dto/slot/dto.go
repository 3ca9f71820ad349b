package slot

type BurstRequest struct {
	Count int `json:"count"` // Кол-во спинов, обрезается до [1,10]
}

type WinLine struct {
	Row    int    `json:"row"`    // Номер ряда, с 0
	Symbol string `json:"symbol"` // ID символа
	Count  int    `json:"count"`  // Длина серии
	Payout int    `json:"payout"` // Выплата
}

type OutcomeResponse struct {
	Grid        [][]string `json:"grid"`  // Сетка rows x columns, ID символов
	Stops       []int      `json:"stops"` // Остановки барабанов
	WinLines    []WinLine  `json:"win_lines"`
	TotalPayout int        `json:"total_payout"`
	SpinIndex   int        `json:"spin_index"`
}

type BurstResponse struct {
	Outcomes []OutcomeResponse `json:"outcomes"`
}

type Bias struct {
	CommonBoost int `json:"common_boost"`
	RareCut     int `json:"rare_cut"`
}

type Reel struct {
	Strip []string `json:"strip"`
	Bias  Bias     `json:"bias"`
}

type PayoutRow struct {
	Symbol string `json:"symbol"`
	X3     int    `json:"x3"`
	X4     int    `json:"x4"`
	X5     int    `json:"x5"`
}

// ConfigRequest - новая конфигурация. payouts не обязательны
type ConfigRequest struct {
	Reels      []Reel      `json:"reels"`
	Rows       int         `json:"rows"`
	MinMatches int         `json:"min_matches"`
	Payouts    []PayoutRow `json:"payouts,omitempty"`
}

type ConfigResponse struct {
	Reels      []Reel      `json:"reels"`
	Rows       int         `json:"rows"`
	MinMatches int         `json:"min_matches"`
	Payouts    []PayoutRow `json:"payouts"`
}

type SimulateRequest struct {
	Rounds  int   `json:"rounds"`  // До 1 000 000
	Workers int   `json:"workers"` // До 32
	Seed    int64 `json:"seed"`    // 0 - случайный
}

type SimulateResponse struct {
	Rounds      int            `json:"rounds"`
	Workers     int            `json:"workers"`
	Seed        int64          `json:"seed"`
	Wins        int            `json:"wins"`
	TotalPayout int64          `json:"total_payout"`
	MaxPayout   int            `json:"max_payout"`
	HitRate     float64        `json:"hit_rate"`
	RTP         float64        `json:"rtp"`
	LineHits    map[string]int `json:"line_hits"` // Выигрышные линии по символам
}
