package configs

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"
)

// SeedAdmin guarantees a stored admin account exists, mirroring the bootstrap
// check the app runs on every start.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.BootstrapUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := entity.User{
		Name:     "Administrator",
		Username: cfg.BootstrapUsername,
		Password: cfg.BootstrapPassword,
		Role:     entity.RoleAdmin,
		Status:   entity.StatusActive,
	}
	return db.Create(&admin).Error
}
