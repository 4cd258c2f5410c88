package repo

import (
	"strings"

	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/shahedzaman612/Inventory-Backend/internal/model"
)

// InitDB открывает соединение с БД по DSN и накатывает миграции моделей.
// postgres-DSN ("postgres://..." или "host=...") — боевой вариант,
// всё остальное трактуется как путь к SQLite (pure-Go драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = gormpg.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Inventory{}, &model.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}
