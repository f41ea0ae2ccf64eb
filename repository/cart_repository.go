package repository

import (
	"errors"

	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ItemsForUser returns the working cart; an empty slice when there is none.
func (r *CartRepository) ItemsForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	return items, err
}

// UpsertLine merges into an existing line for the same menu item, otherwise
// creates a new one.
func (r *CartRepository) UpsertLine(tx *gorm.DB, userID uint, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += line.Quantity
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	line.UserID = userID
	return tx.Create(line).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveLine(tx, userID, itemID)
	}
	return tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, userID, itemID uint) error {
	return tx.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
