package services

import (
	"errors"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

func (s *CartService) Get(userID uint) ([]entity.CartItem, int64, error) {
	items, err := s.CartRepo.ItemsForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return items, total, nil
}

// Add puts qty more units of a menu item into the user's cart after checking
// the resolved stock pool against current cart usage. Parents are structural
// and cannot be added directly.
func (s *CartService) Add(userID, menuItemID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	catalog, err := s.MenuRepo.List()
	if err != nil {
		return err
	}
	item := findMenuItem(catalog, menuItemID)
	if item == nil {
		return errors.New("menu item not found")
	}
	if item.IsParent {
		return errors.New("item is not sellable")
	}

	cart, err := s.CartRepo.ItemsForUser(userID)
	if err != nil {
		return err
	}
	if err := CanAdd(item, qty, cart, catalog); err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   qty,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, userID, line)
	})
}

// UpdateQty moves a line to an absolute quantity. Decrements always pass;
// increments re-run the stock check against the whole pool. Zero removes the
// line.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	if qty < 0 {
		qty = 0
	}

	cart, err := s.CartRepo.ItemsForUser(userID)
	if err != nil {
		return err
	}
	var line *entity.CartItem
	for i := range cart {
		if cart[i].ID == itemID {
			line = &cart[i]
			break
		}
	}
	if line == nil {
		return errors.New("cart item not found")
	}

	if qty > line.Quantity {
		catalog, err := s.MenuRepo.List()
		if err != nil {
			return err
		}
		item := findMenuItem(catalog, line.MenuItemID)
		if item == nil {
			return errors.New("menu item not found")
		}
		if err := CanAdd(item, qty-line.Quantity, cart, catalog); err != nil {
			return err
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
