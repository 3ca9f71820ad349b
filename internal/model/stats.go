package model

// Stats - агрегированная статистика RTP
type Stats struct {
	TotalSpins  int
	TotalBet    int64
	TotalPayout int64
	CurrentRTP  float64 // (TotalPayout/TotalBet)*100
	WindowRTP   float64 // RTP по окну последних спинов
	WindowSize  int
}
