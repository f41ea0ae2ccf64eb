package repository

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) UpdateStock(id uint, stock int) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("stock", stock).Error
}

// DeleteWithChildren removes the item and, for a parent, detaches every
// variant in the same commit so no variant is left pointing at a missing pool.
func (r *MenuRepository) DeleteWithChildren(item *entity.MenuItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.MenuItem{}, item.ID).Error; err != nil {
			return err
		}
		if item.IsParent {
			if err := tx.Model(&entity.MenuItem{}).
				Where("parent_id = ?", item.ID).
				Update("parent_id", 0).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
