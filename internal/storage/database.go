package storage

import (
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the SQLite database at the given path and keeps the
// schema updated via AutoMigrate. Sessions survive a restart only as far as
// the file does; delete the DB file for a clean slate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Session{}, &game.MoveRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
