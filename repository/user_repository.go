package repository

import (
	"strings"

	"github.com/tuananhtran-web/orderbanhmi/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindForLogin matches the login handle case-insensitively or the phone
// exactly, plus the exact password.
func (r *UserRepository) FindForLogin(handle, password string) (*entity.User, error) {
	var user entity.User
	err := r.DB.
		Where("(LOWER(username) = ? OR phone = ?) AND password = ?",
			strings.ToLower(handle), handle, password).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("phone = ?", phone).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListAdmins() ([]entity.User, error) {
	var admins []entity.User
	err := r.DB.Where("role = ?", entity.RoleAdmin).Find(&admins).Error
	return admins, err
}

func (r *UserRepository) SetOnline(id uint, online bool) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("is_online", online).Error
}
