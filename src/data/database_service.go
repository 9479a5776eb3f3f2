package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type DatabaseService struct {
	db *gorm.DB
}

func NewDatabaseService(db *gorm.DB) *DatabaseService {
	return &DatabaseService{
		db: db,
	}
}

func (s *DatabaseService) ListWatchlist(ctx context.Context) ([]eventmodels.WatchlistItem, error) {
	var items []eventmodels.WatchlistItem
	if err := s.db.WithContext(ctx).Order("created_at asc, id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("DatabaseService: ListWatchlist: %w", err)
	}

	return items, nil
}

// AddToWatchlist inserts the symbol, or returns the existing row when it is already watched.
func (s *DatabaseService) AddToWatchlist(ctx context.Context, symbol eventmodels.StockSymbol, notes string) (*eventmodels.WatchlistItem, error) {
	item := &eventmodels.WatchlistItem{
		Symbol:    eventmodels.NewStockSymbol(string(symbol)),
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error; err != nil {
			return err
		}

		return tx.Where("symbol = ?", item.Symbol).First(item).Error
	})

	if err != nil {
		return nil, fmt.Errorf("DatabaseService: AddToWatchlist: %w", err)
	}

	log.WithContext(ctx).Debugf("DatabaseService: watching %s", item.Symbol)

	return item, nil
}

func (s *DatabaseService) RemoveFromWatchlist(ctx context.Context, symbol eventmodels.StockSymbol) error {
	result := s.db.WithContext(ctx).Where("symbol = ?", eventmodels.NewStockSymbol(string(symbol))).Delete(&eventmodels.WatchlistItem{})
	if result.Error != nil {
		return fmt.Errorf("DatabaseService: RemoveFromWatchlist: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return eventmodels.NewWebError(404, "watchlist item not found", errors.New(string(symbol)))
	}

	return nil
}
