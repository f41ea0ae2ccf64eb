package entity

import (
	"gorm.io/gorm"
)

// CartItem is one line of a staff member's working cart: a menu snapshot plus
// a requested quantity. Lines live only until checkout commits them into an
// order.
type CartItem struct {
	gorm.Model
	UserID     uint   `gorm:"index" json:"userId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}
