package services

import (
	"errors"
	"log"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

// UnboundedStock is the effective stock of a topping: it never blocks an add
// and never decrements.
const UnboundedStock = 1<<31 - 1

// The two distinguishable stock rejections: a member of a shared pool runs out
// of shells, a standalone item runs out of stock.
var (
	ErrOutOfShells = errors.New("out of shells")
	ErrOutOfStock  = errors.New("out of stock")
)

// ResolveStockTarget returns the id owning the authoritative stock count for
// an item: the parent pool when the item is a variant, the item itself
// otherwise. All quantity accounting keys on this id.
func ResolveStockTarget(item *entity.MenuItem) uint {
	if item.ParentID != 0 {
		return item.ParentID
	}
	return item.ID
}

func findMenuItem(catalog []entity.MenuItem, id uint) *entity.MenuItem {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// AvailableStock answers how many units the target pool can still supply.
// Fails closed: a missing target reports zero.
func AvailableStock(targetID uint, catalog []entity.MenuItem) int {
	target := findMenuItem(catalog, targetID)
	if target == nil {
		return 0
	}
	if target.Category == entity.CategoryTopping {
		return UnboundedStock
	}
	return target.Stock
}

// CartUsage sums the quantities of every cart line drawing from the target
// pool, across all variants sharing it.
func CartUsage(targetID uint, cart []entity.CartItem, catalog []entity.MenuItem) int {
	usage := 0
	for _, line := range cart {
		info := findMenuItem(catalog, line.MenuItemID)
		if info == nil {
			continue
		}
		if ResolveStockTarget(info) == targetID {
			usage += line.Quantity
		}
	}
	return usage
}

// CanAdd reports whether delta more units of the item fit into the cart given
// live stock. It must run on every increment, not only the first add, because
// sibling variants move the same pool.
func CanAdd(item *entity.MenuItem, delta int, cart []entity.CartItem, catalog []entity.MenuItem) error {
	if item.Category == entity.CategoryTopping {
		return nil
	}
	targetID := ResolveStockTarget(item)
	if CartUsage(targetID, cart, catalog)+delta > AvailableStock(targetID, catalog) {
		if item.ParentID != 0 {
			return ErrOutOfShells
		}
		return ErrOutOfStock
	}
	return nil
}

type StockService struct {
	Repo *repository.MenuRepository
}

func NewStockService(repo *repository.MenuRepository) *StockService {
	return &StockService{Repo: repo}
}

// ApplyOrderStockDecrement walks a committed order and decrements each line's
// resolved target, clamped at zero. Every line is its own best-effort write:
// a failed line logs and the rest continue, and nothing here blocks or rolls
// back the order itself. Batching the decrements into the order-creation
// transaction would be the stricter variant.
func (s *StockService) ApplyOrderStockDecrement(order *entity.Order, sink EventSink) {
	catalog, err := s.Repo.List()
	if err != nil {
		log.Printf("stock decrement: load catalog: %v", err)
		return
	}

	for _, line := range order.Items {
		info := findMenuItem(catalog, line.MenuItemID)
		if info == nil {
			continue
		}
		if info.Category == entity.CategoryTopping {
			continue
		}
		targetID := ResolveStockTarget(info)
		target := findMenuItem(catalog, targetID)
		if target == nil {
			continue
		}

		newStock := target.Stock - line.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.Repo.UpdateStock(targetID, newStock); err != nil {
			log.Printf("stock decrement: item %d: %v", targetID, err)
			continue
		}
		target.Stock = newStock
		publish(sink, "menu_items", ChangeModified, target)
	}
}
