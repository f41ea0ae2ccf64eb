package entity

import (
	"strings"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code          string        `gorm:"uniqueIndex;not null" json:"code"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `gorm:"not null;default:completed" json:"status"`
	Timestamp     int64         `gorm:"index" json:"timestamp"` // unix ms
	StaffID       uint          `json:"staffId"`
	Source        OrderSource   `gorm:"not null;default:app" json:"source"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`

	// Free-text date override used only for report grouping.
	CustomDate string `json:"customDate,omitempty"`

	Items []OrderItem `json:"items"`
}

// ShortCode is the human-readable code announced to staff after a commit.
func (o *Order) ShortCode() string {
	if len(o.Code) < 4 {
		return strings.ToUpper(o.Code)
	}
	return strings.ToUpper(o.Code[len(o.Code)-4:])
}
