package database

import (
	"log/slog"

	"github.com/rentpal/admin-backend/internal/config"
	"github.com/rentpal/admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap operator account when none exists.
// Operators cannot be created through any API flow, so a fresh database
// would otherwise be unusable. Idempotent: skips when the username is taken
// or the env vars are unset.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUserName == "" || cfg.AdminPassword == "" {
		slog.Info("admin seed skipped, ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("user_name = ?", cfg.AdminUserName).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("admin seed already applied, skipping", "user_name", cfg.AdminUserName)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		UserName: cfg.AdminUserName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("admin operator seeded", "user_name", admin.UserName)
	return nil
}
