package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Ludex/models"
)

// DSN builds the SQLite connection string for a database path. Foreign keys
// are enforced so that the declared ON DELETE cascades actually run.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
}

// ConnectGORM returns a GORM DB instance bound to the SQLite file at path.
// Pass ":memory:" for an in-memory database.
func ConnectGORM(path string, verbose bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// SQLite caps the bind variables per statement; large catalog
		// batches have to be split.
		CreateBatchSize: 500,
	}
	if verbose {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		)
	}

	db, err := gorm.Open(sqlite.Open(DSN(path)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	// Single-writer batch semantics: one connection is all we want.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("reading underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// MigrateDatabase migrates the GORM models to the SQLite database.
// Reference tables go first so that foreign keys resolve.
func MigrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		models.Genre{},
		models.Publisher{},
		models.Platform{},
		models.User{},
		models.Game{},
		models.Sale{},
		models.GameUser{},
		models.GamePlatform{})

	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
