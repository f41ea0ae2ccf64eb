package repository

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint) ([]entity.Notification, error) {
	var ns []entity.Notification
	err := r.DB.Where("user_id = ?", userID).Order("timestamp DESC").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&entity.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

// MarkAllRead flips every unread record for the user in one commit.
func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entity.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error
	})
}
