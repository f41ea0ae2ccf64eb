package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders newest first, items preloaded. limit <= 0 means all.
func (r *OrderRepository) List(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Preload("Items").Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListCompleted() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ?", entity.OrderCompleted).
		Order("timestamp DESC").
		Find(&orders).Error
	return orders, err
}

type deletedItemSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DeleteWithLogs removes the given orders and writes one audit log per order
// in a single transaction. A missing id fails the whole batch; partial state
// is never left behind.
func (r *OrderRepository) DeleteWithLogs(ids []uint, actorName string, actorRole entity.Role) error {
	now := time.Now().UnixMilli()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var o entity.Order
			if err := tx.Preload("Items").First(&o, id).Error; err != nil {
				return fmt.Errorf("order %d: %w", id, err)
			}

			summary := make([]deletedItemSummary, 0, len(o.Items))
			for _, it := range o.Items {
				summary = append(summary, deletedItemSummary{Name: it.Name, Quantity: it.Quantity})
			}
			raw, err := json.Marshal(summary)
			if err != nil {
				return err
			}

			logRow := entity.DeletedOrderLog{
				OriginalID:    o.ID,
				OrderCode:     o.Code,
				ItemsSummary:  string(raw),
				Total:         o.Total,
				PaymentMethod: o.PaymentMethod,
				DeletedBy:     actorName,
				DeletedByRole: actorRole,
				DeletedAt:     now,
			}
			if err := tx.Create(&logRow).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", o.ID).Delete(&entity.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.Order{}, o.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) ListDeletedLogs() ([]entity.DeletedOrderLog, error) {
	var logs []entity.DeletedOrderLog
	err := r.DB.Order("deleted_at DESC").Find(&logs).Error
	return logs, err
}

// PurgeLogs permanently removes audit records, all or nothing.
func (r *OrderRepository) PurgeLogs(ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var logRow entity.DeletedOrderLog
			if err := tx.First(&logRow, id).Error; err != nil {
				return fmt.Errorf("log %d: %w", id, err)
			}
			if err := tx.Delete(&entity.DeletedOrderLog{}, id).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
