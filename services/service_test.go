package services

import (
	"testing"

	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: "bm_"},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.DeletedOrderLog{},
		&entity.CheckInRecord{}, &entity.Shift{},
		&entity.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// memorySink records everything pushed at the event layer.
type memorySink struct {
	events []struct {
		Collection string
		Type       string
	}
	notifications []*entity.Notification
	logouts       []uint
}

func (m *memorySink) Publish(collection, changeType string, doc any) {
	m.events = append(m.events, struct {
		Collection string
		Type       string
	}{collection, changeType})
}

func (m *memorySink) NotificationAdded(n *entity.Notification) {
	m.notifications = append(m.notifications, n)
}

func (m *memorySink) ForceLogout(userID uint) {
	m.logouts = append(m.logouts, userID)
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create fixture %T: %v", value, err)
	}
}
