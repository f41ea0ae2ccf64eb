package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Stock    *StockService
	Notifier *NotificationService
	Events   EventSink
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	stock *StockService,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo,
		Stock: stock, Notifier: notifier,
	}
}

type CheckoutReq struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" binding:"required"`
	Source        entity.OrderSource   `json:"source"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	CustomDate    string               `json:"customDate"`
}

// Checkout is the authoritative order commit. Only the order write itself can
// fail the operation; the notification fan-out and the per-line stock
// decrements are best-effort, and the cart is cleared no matter what so a bad
// commit never leaves a stale pending order on screen.
func (s *OrderService) Checkout(staff *entity.User, req *CheckoutReq) (*entity.Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, errors.New("invalid payment method")
	}
	source := req.Source
	if !source.Valid() {
		source = entity.SourceApp
	}

	cart, err := s.CartRepo.ItemsForUser(staff.ID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, errors.New("cart is empty")
	}

	var total int64
	items := make([]entity.OrderItem, 0, len(cart))
	for _, line := range cart {
		// Total trusts the cart snapshot; it is not re-derived from live
		// menu prices.
		total += line.Price * int64(line.Quantity)
		items = append(items, entity.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	order := &entity.Order{
		Code:          utils.NewOrderCode(),
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.OrderCompleted,
		Timestamp:     time.Now().UnixMilli(),
		StaffID:       staff.ID,
		Source:        source,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomDate:    req.CustomDate,
		Items:         items,
	}

	createErr := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})

	// The cart empties regardless of the commit outcome.
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, staff.ID)
	}); err != nil {
		log.Printf("checkout: clear cart for user %d: %v", staff.ID, err)
	}

	if createErr != nil {
		return nil, createErr
	}

	s.fanOut(staff, order)
	return order, nil
}

// fanOut runs the secondary effects of a committed order. Each step is
// independently fallible; failures log and never undo the order.
func (s *OrderService) fanOut(staff *entity.User, order *entity.Order) {
	publish(s.Events, "orders", ChangeAdded, order)

	if err := s.Notifier.Notify(staff.ID,
		fmt.Sprintf("Order %s placed!", order.ShortCode()), entity.NotifyOrder); err != nil {
		log.Printf("checkout: notify staff %d: %v", staff.ID, err)
	}

	admins, err := s.UserRepo.ListAdmins()
	if err != nil {
		log.Printf("checkout: list admins: %v", err)
	} else {
		msg := fmt.Sprintf("New order from %s: %dđ", staff.Name, order.Total)
		for _, admin := range admins {
			if err := s.Notifier.Notify(admin.ID, msg, entity.NotifyOrder); err != nil {
				log.Printf("checkout: notify admin %d: %v", admin.ID, err)
			}
		}
	}

	s.Stock.ApplyOrderStockDecrement(order, s.Events)
}

func (s *OrderService) List(limit int) ([]entity.Order, error) {
	return s.Repo.List(limit)
}

func (s *OrderService) ListForStaff(staffID uint, limit int) ([]entity.Order, error) {
	orders, err := s.Repo.List(limit)
	if err != nil {
		return nil, err
	}
	mine := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.StaffID == staffID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// DeleteMany removes orders with their paired audit logs, all or nothing.
func (s *OrderService) DeleteMany(ids []uint, actor *entity.User) error {
	if len(ids) == 0 {
		return errors.New("no orders selected")
	}
	if err := s.Repo.DeleteWithLogs(ids, actor.Name, actor.Role); err != nil {
		return err
	}
	for _, id := range ids {
		publish(s.Events, "orders", ChangeRemoved, map[string]any{"id": id})
	}
	return nil
}

func (s *OrderService) ListDeletedLogs() ([]entity.DeletedOrderLog, error) {
	return s.Repo.ListDeletedLogs()
}

// PurgeLogs permanently removes audit records; admin-only, batch-atomic.
func (s *OrderService) PurgeLogs(ids []uint) error {
	if len(ids) == 0 {
		return errors.New("no logs selected")
	}
	if err := s.Repo.PurgeLogs(ids); err != nil {
		return err
	}
	for _, id := range ids {
		publish(s.Events, "deleted_orders", ChangeRemoved, map[string]any{"id": id})
	}
	return nil
}
