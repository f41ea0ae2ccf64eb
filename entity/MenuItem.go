package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category Category `gorm:"not null;default:food" json:"category"`
	Image    string   `json:"image,omitempty"`
	Stock    int      `json:"stock"`

	// A parent item is the shared stock pool for its variants and is not
	// directly sellable. A variant (ParentID != 0) sells with its own price
	// but draws down the parent's stock.
	IsParent bool `json:"isParent"`
	ParentID uint `json:"parentId"`
}
