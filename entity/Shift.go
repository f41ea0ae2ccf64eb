package entity

import (
	"gorm.io/gorm"
)

type Shift struct {
	gorm.Model
	Date      string `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"not null" json:"startTime"`  // HH:MM
	EndTime   string `gorm:"not null" json:"endTime"`    // HH:MM
	Note      string `json:"note,omitempty"`

	Staff []User `gorm:"many2many:shift_staff;" json:"staff"`
}

func (s *Shift) HasStaff(userID uint) bool {
	for _, u := range s.Staff {
		if u.ID == userID {
			return true
		}
	}
	return false
}
