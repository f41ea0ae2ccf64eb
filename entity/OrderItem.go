package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots name and price at commit time; MenuItemID is kept so the
// stock ledger can resolve the line back to its stock target.
type OrderItem struct {
	gorm.Model
	OrderID    uint   `gorm:"index" json:"orderId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}
