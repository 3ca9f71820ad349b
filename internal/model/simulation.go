package model

// SimulationRequest - параметры прогона RTP симуляции
type SimulationRequest struct {
	Rounds  int
	Workers int
	Seed    int64 // 0 - случайный seed
}

// SimulationReport - итог симуляции при ставке 1
type SimulationReport struct {
	Rounds      int
	Workers     int
	Seed        int64
	Wins        int // Спины с ненулевой выплатой
	TotalPayout int64
	MaxPayout   int
	HitRate     float64 // Доля выигрышных спинов, %
	RTP         float64 // TotalPayout / Rounds * 100
	LineHits    map[Symbol]int
}
