package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rentpal/admin-backend/internal/config"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestSeedAdminPersistsAdminRole(t *testing.T) {
	db := setupSeedDB(t)
	cfg := &config.Config{AdminUserName: "admin", AdminEmail: "admin@example.com", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))

	// The stored row must come back with role 0; the profile endpoint looks
	// admins up by that value.
	var admin models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin", admin.UserName)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")))
}

func TestSeedAdminIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	cfg := &config.Config{AdminUserName: "admin", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWithoutEnv(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, SeedAdmin(db, &config.Config{}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
