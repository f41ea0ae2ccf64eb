package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string     `json:"name"`
	Username string     `gorm:"uniqueIndex;not null" json:"username"`
	Password string     `json:"-"`
	Role     Role       `gorm:"not null;default:staff" json:"role"`
	Status   UserStatus `gorm:"not null;default:pending" json:"status"`
	IsOnline bool       `json:"isOnline"`
	Avatar   string     `json:"avatar,omitempty"`
	Phone    string     `json:"phone,omitempty"`

	// preload only when needed
	Shifts []Shift `gorm:"many2many:shift_staff;" json:"-"`
}
