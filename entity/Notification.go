package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID    uint             `gorm:"index" json:"userId"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	Timestamp int64            `gorm:"index" json:"timestamp"` // unix ms
	Type      NotificationType `gorm:"not null;default:system" json:"type"`
}
