package model

// DailyStat é o fechamento diário por estabelecimento, gravado pelo
// agendador às 00:05 e consultado pelo painel
type DailyStat struct {
	DTO
	BusinessId uint    `gorm:"uniqueIndex:idx_stat_day;not null" json:"businessId"`
	Day        string  `gorm:"uniqueIndex:idx_stat_day;size:10;not null" json:"day"` // 2006-01-02
	Orders     int64   `json:"orders"`
	Cancelled  int64   `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}
