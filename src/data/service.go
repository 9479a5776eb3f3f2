package data

import (
	"context"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

// WatchlistStore persists the underlyings scanned for premium candidates.
type WatchlistStore interface {
	ListWatchlist(ctx context.Context) ([]eventmodels.WatchlistItem, error)
	AddToWatchlist(ctx context.Context, symbol eventmodels.StockSymbol, notes string) (*eventmodels.WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, symbol eventmodels.StockSymbol) error
}

func WatchlistSymbols(items []eventmodels.WatchlistItem) []eventmodels.StockSymbol {
	symbols := make([]eventmodels.StockSymbol, 0, len(items))
	for _, item := range items {
		symbols = append(symbols, item.Symbol)
	}

	return symbols
}
