package services

import (
	"errors"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

type MenuService struct {
	Repo   *repository.MenuRepository
	Events EventSink
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

type MenuItemIn struct {
	Name     string          `json:"name" binding:"required"`
	Price    int64           `json:"price"`
	Category entity.Category `json:"category"`
	Image    string          `json:"image"`
	Stock    int             `json:"stock"`
	IsParent bool            `json:"isParent"`
	ParentID uint            `json:"parentId"`
}

// normalize applies the structural stock rules: toppings carry the sentinel,
// variants carry none (the parent pool owns it), parents need no price.
func (in *MenuItemIn) normalize() (*entity.MenuItem, error) {
	if in.Category == "" {
		in.Category = entity.CategoryFood
	}
	if !in.IsParent && in.ParentID == 0 && in.Price <= 0 {
		return nil, errors.New("price is required")
	}

	stock := in.Stock
	switch {
	case in.Category == entity.CategoryTopping:
		stock = entity.ToppingStockSentinel
	case in.ParentID != 0:
		stock = 0
	}

	return &entity.MenuItem{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		Image:    in.Image,
		Stock:    stock,
		IsParent: in.IsParent,
		ParentID: in.ParentID,
	}, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	publish(s.Events, "menu_items", ChangeAdded, item)
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, errors.New("menu item not found")
	}
	item, err := in.normalize()
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name": item.Name, "price": item.Price, "category": item.Category,
		"image": item.Image, "stock": item.Stock,
		"is_parent": item.IsParent, "parent_id": item.ParentID,
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	updated, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	publish(s.Events, "menu_items", ChangeModified, updated)
	return updated, nil
}

// SetStock is the admin's direct stock edit.
func (s *MenuService) SetStock(id uint, stock int) error {
	if stock < 0 {
		stock = 0
	}
	if err := s.Repo.UpdateStock(id, stock); err != nil {
		return err
	}
	item, err := s.Repo.FindByID(id)
	if err == nil {
		publish(s.Events, "menu_items", ChangeModified, item)
	}
	return nil
}

// Delete removes an item; deleting a parent detaches its variants in the same
// commit.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return errors.New("menu item not found")
	}
	if err := s.Repo.DeleteWithChildren(item); err != nil {
		return err
	}
	publish(s.Events, "menu_items", ChangeRemoved, map[string]any{"id": id})
	return nil
}
