package services

import (
	"errors"
	"testing"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

func poolFixtures() []entity.MenuItem {
	return []entity.MenuItem{
		{Model: gorm.Model{ID: 1}, Name: "Shell", Category: entity.CategoryFood, Stock: 10, IsParent: true},
		{Model: gorm.Model{ID: 2}, Name: "Pork", Category: entity.CategoryFood, Price: 25000, ParentID: 1},
		{Model: gorm.Model{ID: 3}, Name: "Chicken", Category: entity.CategoryFood, Price: 28000, ParentID: 1},
		{Model: gorm.Model{ID: 4}, Name: "Iced Tea", Category: entity.CategoryFood, Price: 10000, Stock: 2},
		{Model: gorm.Model{ID: 5}, Name: "Extra Pate", Category: entity.CategoryTopping, Price: 5000, Stock: entity.ToppingStockSentinel},
	}
}

func TestResolveStockTarget(t *testing.T) {
	catalog := poolFixtures()
	if got := ResolveStockTarget(&catalog[1]); got != 1 {
		t.Errorf("variant should resolve to its parent, got %d", got)
	}
	if got := ResolveStockTarget(&catalog[3]); got != 4 {
		t.Errorf("standalone item should resolve to itself, got %d", got)
	}
}

func TestCartUsageAggregatesAcrossVariants(t *testing.T) {
	catalog := poolFixtures()
	cart := []entity.CartItem{
		{MenuItemID: 2, Quantity: 4},
		{MenuItemID: 3, Quantity: 3},
		{MenuItemID: 4, Quantity: 1},
	}
	if got := CartUsage(1, cart, catalog); got != 7 {
		t.Errorf("pool usage = %d, want 7 (both variants counted)", got)
	}
	if got := CartUsage(4, cart, catalog); got != 1 {
		t.Errorf("standalone usage = %d, want 1", got)
	}
}

func TestCanAddSharedPool(t *testing.T) {
	catalog := poolFixtures()
	cart := []entity.CartItem{
		{MenuItemID: 2, Quantity: 6},
	}

	// 6 of 10 shells used; another 4 of the sibling fits, 5 does not.
	if err := CanAdd(&catalog[2], 4, cart, catalog); err != nil {
		t.Errorf("adding 4 siblings should fit: %v", err)
	}
	if err := CanAdd(&catalog[2], 5, cart, catalog); !errors.Is(err, ErrOutOfShells) {
		t.Errorf("adding 5 siblings = %v, want ErrOutOfShells", err)
	}
}

func TestCanAddStandalone(t *testing.T) {
	catalog := poolFixtures()
	cart := []entity.CartItem{{MenuItemID: 4, Quantity: 2}}

	if err := CanAdd(&catalog[3], 1, cart, catalog); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("exceeding standalone stock = %v, want ErrOutOfStock", err)
	}
}

func TestCanAddToppingNeverBlocks(t *testing.T) {
	catalog := poolFixtures()
	if err := CanAdd(&catalog[4], 1000, nil, catalog); err != nil {
		t.Errorf("topping add should never block: %v", err)
	}
}

func TestAvailableStockMissingTargetFailsClosed(t *testing.T) {
	if got := AvailableStock(99, poolFixtures()); got != 0 {
		t.Errorf("missing target stock = %d, want 0", got)
	}
}

func TestApplyOrderStockDecrement(t *testing.T) {
	db := newTestDB(t)
	for _, item := range poolFixtures() {
		it := item
		mustCreate(t, db, &it)
	}
	svc := NewStockService(repository.NewMenuRepository(db))
	sink := &memorySink{}

	order := &entity.Order{Items: []entity.OrderItem{
		{MenuItemID: 2, Quantity: 4}, // variant: pool 10 -> 6
		{MenuItemID: 4, Quantity: 5}, // standalone: 2 -> clamped 0
		{MenuItemID: 5, Quantity: 3}, // topping: untouched
	}}
	svc.ApplyOrderStockDecrement(order, sink)

	var pool, tea, topping entity.MenuItem
	db.First(&pool, 1)
	db.First(&tea, 4)
	db.First(&topping, 5)

	if pool.Stock != 6 {
		t.Errorf("pool stock = %d, want 6", pool.Stock)
	}
	if tea.Stock != 0 {
		t.Errorf("standalone stock = %d, want 0 (clamped)", tea.Stock)
	}
	if topping.Stock != entity.ToppingStockSentinel {
		t.Errorf("topping stock = %d, want sentinel untouched", topping.Stock)
	}
	if len(sink.events) != 2 {
		t.Errorf("published %d menu events, want 2 (topping skipped)", len(sink.events))
	}
}

func TestApplyOrderStockDecrementSamePoolTwice(t *testing.T) {
	db := newTestDB(t)
	for _, item := range poolFixtures() {
		it := item
		mustCreate(t, db, &it)
	}
	svc := NewStockService(repository.NewMenuRepository(db))

	// Two lines drawing the same pool must accumulate, not race a stale read.
	order := &entity.Order{Items: []entity.OrderItem{
		{MenuItemID: 2, Quantity: 3},
		{MenuItemID: 3, Quantity: 4},
	}}
	svc.ApplyOrderStockDecrement(order, &memorySink{})

	var pool entity.MenuItem
	db.First(&pool, 1)
	if pool.Stock != 3 {
		t.Errorf("pool stock after both lines = %d, want 3", pool.Stock)
	}
}
