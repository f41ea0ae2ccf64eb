package entity

import (
	"gorm.io/gorm"
)

// DeletedOrderLog is the audit record paired with every order deletion. It is
// written in the same transaction as the removal, never mutated, and only an
// admin purge removes it.
type DeletedOrderLog struct {
	gorm.Model
	OriginalID    uint          `json:"originalId"`
	OrderCode     string        `json:"orderCode"`
	ItemsSummary  string        `json:"itemsSummary"` // JSON [{name, quantity}]
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	DeletedBy     string        `json:"deletedBy"`
	DeletedByRole Role          `json:"deletedByRole"`
	DeletedAt     int64         `gorm:"index" json:"deletedAt"` // unix ms
}
