package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Property{},
		&models.Booking{},
		&models.Transaction{},
		&models.Account{},
		&models.Dispute{},
		&models.Terms{},
	)
	require.NoError(t, err)

	return db
}
