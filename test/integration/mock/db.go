package mock

import (
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phoenix-field/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb opens a shared in-memory SQLite database holding the refresh token
// sessions. The connection is a process-wide singleton so every scenario sees
// the same schema; call Reset between scenarios.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}
		if err := conn.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}
		dbConn = conn
	})
	return dbConn
}

// Reset truncates all session state.
func Reset(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.RefreshTokenModel{}).Error
}
