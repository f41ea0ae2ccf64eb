package services

import (
	"strings"
	"testing"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T) (*gorm.DB, *OrderService, *memorySink, *entity.User) {
	t.Helper()
	db := newTestDB(t)
	sink := &memorySink{}

	notifier := NewNotificationService(repository.NewNotificationRepository(db))
	notifier.Events = sink
	stock := NewStockService(repository.NewMenuRepository(db))
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		stock,
		notifier,
	)
	svc.Events = sink

	staff := &entity.User{Name: "Linh", Username: "linh", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, staff)
	admin := &entity.User{Name: "Boss", Username: "boss", Password: "pw", Role: entity.RoleAdmin, Status: entity.StatusActive}
	mustCreate(t, db, admin)

	for _, item := range poolFixtures() {
		it := item
		mustCreate(t, db, &it)
	}
	return db, svc, sink, staff
}

func fillCart(t *testing.T, db *gorm.DB, userID uint, lines ...entity.CartItem) {
	t.Helper()
	for i := range lines {
		lines[i].UserID = userID
		mustCreate(t, db, &lines[i])
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, svc, _, staff := newOrderFixture(t)
	if _, err := svc.Checkout(staff, &CheckoutReq{PaymentMethod: entity.PaymentCash}); err == nil {
		t.Fatal("checkout with empty cart should fail")
	}
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	_, svc, _, staff := newOrderFixture(t)
	if _, err := svc.Checkout(staff, &CheckoutReq{PaymentMethod: "credit"}); err == nil {
		t.Fatal("unknown payment method should be rejected")
	}
}

func TestCheckoutCommitsAndFansOut(t *testing.T) {
	db, svc, sink, staff := newOrderFixture(t)
	fillCart(t, db, staff.ID,
		entity.CartItem{MenuItemID: 2, Name: "Pork", Price: 25000, Quantity: 2},
		entity.CartItem{MenuItemID: 4, Name: "Iced Tea", Price: 10000, Quantity: 1},
	)

	order, err := svc.Checkout(staff, &CheckoutReq{PaymentMethod: entity.PaymentCash})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Total != 60000 {
		t.Errorf("total = %d, want 60000 (from cart snapshot)", order.Total)
	}
	if order.Source != entity.SourceApp {
		t.Errorf("source = %q, want default app", order.Source)
	}
	if len(order.Code) != 20 {
		t.Errorf("code length = %d, want 20", len(order.Code))
	}
	if sc := order.ShortCode(); len(sc) != 4 || sc != strings.ToUpper(sc) {
		t.Errorf("short code %q should be the upper-cased last 4", sc)
	}

	// Cart gone.
	var remaining int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", staff.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("cart lines after checkout = %d, want 0", remaining)
	}

	// Stock fan-out: pool 10-2=8, tea 2-1=1.
	var pool, tea entity.MenuItem
	db.First(&pool, 1)
	db.First(&tea, 4)
	if pool.Stock != 8 || tea.Stock != 1 {
		t.Errorf("stock after checkout = (%d, %d), want (8, 1)", pool.Stock, tea.Stock)
	}

	// Staff confirmation plus one admin alert.
	if len(sink.notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(sink.notifications))
	}
	if !strings.Contains(sink.notifications[0].Message, order.ShortCode()) {
		t.Errorf("staff toast %q should carry the short code", sink.notifications[0].Message)
	}
	if !strings.Contains(sink.notifications[1].Message, "Linh") {
		t.Errorf("admin toast %q should name the staff member", sink.notifications[1].Message)
	}
}

func TestCheckoutClearsCartWhenCommitFails(t *testing.T) {
	db, svc, _, staff := newOrderFixture(t)
	fillCart(t, db, staff.ID, entity.CartItem{MenuItemID: 4, Name: "Iced Tea", Price: 10000, Quantity: 1})

	// Make the order insert itself impossible.
	if err := db.Migrator().DropTable(&entity.Order{}); err != nil {
		t.Fatalf("drop orders table: %v", err)
	}

	if _, err := svc.Checkout(staff, &CheckoutReq{PaymentMethod: entity.PaymentCash}); err == nil {
		t.Fatal("checkout should surface the commit failure")
	}

	var remaining int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", staff.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("cart lines after failed commit = %d, want 0 (cleared regardless)", remaining)
	}
}

func TestListForStaffFiltersOwnOrders(t *testing.T) {
	db, svc, _, staff := newOrderFixture(t)
	other := &entity.User{Name: "Mai", Username: "mai", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, other)

	fillCart(t, db, staff.ID, entity.CartItem{MenuItemID: 4, Name: "Iced Tea", Price: 10000, Quantity: 1})
	if _, err := svc.Checkout(staff, &CheckoutReq{PaymentMethod: entity.PaymentCash}); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	fillCart(t, db, other.ID, entity.CartItem{MenuItemID: 2, Name: "Pork", Price: 25000, Quantity: 1})
	if _, err := svc.Checkout(other, &CheckoutReq{PaymentMethod: entity.PaymentTransfer}); err != nil {
		t.Fatalf("checkout other: %v", err)
	}

	mine, err := svc.ListForStaff(staff.ID, 50)
	if err != nil {
		t.Fatalf("list for staff: %v", err)
	}
	if len(mine) != 1 || mine[0].StaffID != staff.ID {
		t.Errorf("own history = %d orders, want exactly the one placed by the staff member", len(mine))
	}
}
