package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/logger"
)

func newTestDatabaseService(t *testing.T) *DatabaseService {
	dbPath := filepath.Join(t.TempDir(), "watchlist.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.NewLogrusLogger().LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&eventmodels.WatchlistItem{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewDatabaseService(db)
}

func TestDatabaseService(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate adds return the existing row", func(t *testing.T) {
		store := newTestDatabaseService(t)

		first, err := store.AddToWatchlist(ctx, "aapl", "earnings in july")
		require.NoError(t, err)
		assert.Equal(t, eventmodels.StockSymbol("AAPL"), first.Symbol)
		assert.NotZero(t, first.ID)

		second, err := store.AddToWatchlist(ctx, "AAPL", "")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "earnings in july", second.Notes)

		items, err := store.ListWatchlist(ctx)
		require.NoError(t, err)
		assert.Equal(t, []eventmodels.StockSymbol{"AAPL"}, WatchlistSymbols(items))
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		store := newTestDatabaseService(t)

		for _, symbol := range []eventmodels.StockSymbol{"SPY", "QQQ", "IWM"} {
			_, err := store.AddToWatchlist(ctx, symbol, "")
			require.NoError(t, err)
		}

		items, err := store.ListWatchlist(ctx)
		require.NoError(t, err)
		assert.Equal(t, []eventmodels.StockSymbol{"SPY", "QQQ", "IWM"}, WatchlistSymbols(items))
	})

	t.Run("removes a watched symbol", func(t *testing.T) {
		store := newTestDatabaseService(t)

		_, err := store.AddToWatchlist(ctx, "SPY", "")
		require.NoError(t, err)

		require.NoError(t, store.RemoveFromWatchlist(ctx, "spy"))

		items, err := store.ListWatchlist(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("removing a missing symbol is a 404", func(t *testing.T) {
		store := newTestDatabaseService(t)

		err := store.RemoveFromWatchlist(ctx, "TSLA")
		require.Error(t, err)
		assert.Equal(t, 404, eventmodels.StatusCodeFromError(err, 500))
	})
}
