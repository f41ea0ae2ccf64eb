package entity

import (
	"gorm.io/gorm"
)

// CheckInRecord evidences one physical check action. Coordinates and ImageURL
// are mutually substitutable: a GPS record carries coordinates, a camera
// fallback record carries the photo URL with zero coordinates. Records are
// immutable; the last record of a day decides on/off-shift state.
type CheckInRecord struct {
	gorm.Model
	StaffID   uint      `gorm:"index" json:"staffId"`
	Timestamp int64     `gorm:"index" json:"timestamp"` // unix ms
	Type      CheckType `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Address   string    `json:"address,omitempty"`
}
