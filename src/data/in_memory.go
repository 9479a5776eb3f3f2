package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

// InMemoryWatchlistStore keeps the watchlist in process. Used when no database is configured.
type InMemoryWatchlistStore struct {
	mu     sync.Mutex
	items  []eventmodels.WatchlistItem
	nextID uint
	now    func() time.Time
}

func NewInMemoryWatchlistStore(symbols ...eventmodels.StockSymbol) *InMemoryWatchlistStore {
	store := &InMemoryWatchlistStore{
		now: func() time.Time { return time.Now().UTC() },
	}

	for _, symbol := range symbols {
		store.add(symbol, "")
	}

	return store
}

func (s *InMemoryWatchlistStore) ListWatchlist(ctx context.Context) ([]eventmodels.WatchlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]eventmodels.WatchlistItem, len(s.items))
	copy(items, s.items)

	return items, nil
}

func (s *InMemoryWatchlistStore) AddToWatchlist(ctx context.Context, symbol eventmodels.StockSymbol, notes string) (*eventmodels.WatchlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.add(symbol, notes)
	return &item, nil
}

func (s *InMemoryWatchlistStore) add(symbol eventmodels.StockSymbol, notes string) eventmodels.WatchlistItem {
	symbol = eventmodels.NewStockSymbol(string(symbol))

	for _, item := range s.items {
		if item.Symbol == symbol {
			return item
		}
	}

	s.nextID++
	item := eventmodels.WatchlistItem{
		ID:        s.nextID,
		Symbol:    symbol,
		Notes:     notes,
		CreatedAt: s.now(),
	}

	s.items = append(s.items, item)

	return item
}

func (s *InMemoryWatchlistStore) RemoveFromWatchlist(ctx context.Context, symbol eventmodels.StockSymbol) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol = eventmodels.NewStockSymbol(string(symbol))

	for i, item := range s.items {
		if item.Symbol == symbol {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	return eventmodels.NewWebError(404, "watchlist item not found", errors.New(string(symbol)))
}
