package eventmodels

import "time"

type WatchlistItem struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Symbol    StockSymbol `json:"symbol" gorm:"column:symbol;type:text;uniqueIndex:idx_watchlist_symbol;not null"`
	Notes     string      `json:"notes,omitempty" gorm:"column:notes;type:text"`
	CreatedAt time.Time   `json:"createdAt" gorm:"column:created_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_items"
}
