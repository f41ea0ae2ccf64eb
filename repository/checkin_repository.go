package repository

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type CheckInRepository struct {
	DB *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{DB: db}
}

func (r *CheckInRepository) Create(rec *entity.CheckInRecord) error {
	return r.DB.Create(rec).Error
}

func (r *CheckInRepository) ListAll() ([]entity.CheckInRecord, error) {
	var recs []entity.CheckInRecord
	err := r.DB.Order("timestamp DESC").Find(&recs).Error
	return recs, err
}

func (r *CheckInRepository) ListByStaff(staffID uint) ([]entity.CheckInRecord, error) {
	var recs []entity.CheckInRecord
	err := r.DB.Where("staff_id = ?", staffID).Order("timestamp DESC").Find(&recs).Error
	return recs, err
}

// ListByStaffBetween returns a staff member's records inside [from, to) in
// chronological order, so the caller can take the last one of the day.
func (r *CheckInRepository) ListByStaffBetween(staffID uint, fromMs, toMs int64) ([]entity.CheckInRecord, error) {
	var recs []entity.CheckInRecord
	err := r.DB.
		Where("staff_id = ? AND timestamp >= ? AND timestamp < ?", staffID, fromMs, toMs).
		Order("timestamp ASC").
		Find(&recs).Error
	return recs, err
}
