package dbutils

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/logger"
)

const (
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// InitPostgresWithUrl opens the watchlist database and migrates its schema.
func InitPostgresWithUrl(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.NewLogrusLogger().LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("dbutils: failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("dbutils: failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns / 2)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := db.AutoMigrate(&eventmodels.WatchlistItem{}); err != nil {
		return nil, fmt.Errorf("dbutils: failed to migrate watchlist: %w", err)
	}

	return db, nil
}

func InitPostgres(host, port, user, password, dbName string) (*gorm.DB, error) {
	url := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", host, user, password, dbName, port)
	return InitPostgresWithUrl(url)
}
