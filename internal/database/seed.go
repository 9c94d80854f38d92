package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAdmin creates an admin account when none exists yet, so a
// fresh database is usable without a registration step.
func SeedDefaultAdmin(db *gorm.DB, username, password, email string) error {
	var count int64
	if err := db.Model(&User{}).
		Where("role = ?", RoleAdmin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Name:         "Default",
		Surname:      "Admin",
		Role:         RoleAdmin,
		Enabled:      true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	return nil
}
