package services

import (
	"testing"

	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByRoleMergesProfiles(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	withProfile := models.User{UserName: "abel", Email: "abel@example.com", Password: "x", Role: models.RoleLandlord}
	require.NoError(t, db.Create(&withProfile).Error)
	require.NoError(t, db.Create(&models.Profile{
		UserID:         withProfile.ID,
		FirstName:      "Abel",
		MiddleName:     "T",
		PhoneNumber:    "0911000000",
		Address:        "Addis Ababa",
		ProfilePicture: "abel.png",
	}).Error)

	bare := models.User{UserName: "meron", Email: "meron@example.com", Password: "x", Role: models.RoleLandlord}
	require.NoError(t, db.Create(&bare).Error)

	tenant := models.User{UserName: "kidus", Email: "kidus@example.com", Password: "x", Role: models.RoleTenant}
	require.NoError(t, db.Create(&tenant).Error)

	result, err := svc.ListByRole(models.RoleLandlord)
	require.NoError(t, err)
	require.Len(t, result, 2)

	byName := map[string]int{result[0].UserName: 0, result[1].UserName: 1}
	abel := result[byName["abel"]]
	assert.Equal(t, "Abel", abel.FirstName)
	assert.Equal(t, "0911000000", abel.PhoneNumber)
	assert.Equal(t, "abel.png", abel.ProfilePicture)

	// A user with no profile is still listed, with empty strings (never
	// dropped, never null).
	meron := result[byName["meron"]]
	assert.Equal(t, "meron", meron.UserName)
	assert.Equal(t, "", meron.FirstName)
	assert.Equal(t, "", meron.MiddleName)
	assert.Equal(t, "", meron.PhoneNumber)
	assert.Equal(t, "", meron.Address)
	assert.Equal(t, "", meron.ProfilePicture)
}

func TestListByRoleDuplicateProfileKeepsFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := models.User{UserName: "lily", Email: "lily@example.com", Password: "x", Role: models.RoleBoth}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, FirstName: "First"}).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, FirstName: "Second"}).Error)

	result, err := svc.ListByRole(models.RoleBoth)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "First", result[0].FirstName)
}

func TestTotalUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, db.Create(&models.User{UserName: name, Password: "x"}).Error)
	}

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
