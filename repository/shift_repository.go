package repository

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type ShiftRepository struct {
	DB *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{DB: db}
}

func (r *ShiftRepository) Create(shift *entity.Shift) error {
	return r.DB.Create(shift).Error
}

func (r *ShiftRepository) ListAll() ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := r.DB.Preload("Staff").Order("date ASC").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) ListByDate(date string) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := r.DB.Preload("Staff").Where("date = ?", date).Find(&shifts).Error
	return shifts, err
}

// ListForStaffFrom returns a staff member's shifts on or after the given date.
func (r *ShiftRepository) ListForStaffFrom(staffID uint, date string) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := r.DB.Preload("Staff").
		Joins("JOIN bm_shift_staff ss ON ss.shift_id = bm_shifts.id").
		Where("ss.user_id = ? AND date >= ?", staffID, date).
		Order("date ASC").
		Find(&shifts).Error
	return shifts, err
}
