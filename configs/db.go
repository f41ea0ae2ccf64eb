package configs

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store. Every table gets the bm_ prefix so the data
// coexists with unrelated apps sharing the same database file.
func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: "bm_"},
	})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.DeletedOrderLog{},
		&entity.CheckInRecord{}, &entity.Shift{},
		&entity.Notification{},
	)
}
