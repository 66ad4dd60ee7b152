package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingWithUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	user := models.User{UserName: "hanna", Email: "hanna@example.com", Password: "x", Role: models.RoleTenant}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{
		UserID:    user.ID,
		FirstName: "Hanna",
		IDImage:   "hanna-id.jpg",
	}).Error)

	// Pending profile whose user is gone is still listed.
	ghostUser := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		UserID:    ghostUser,
		FirstName: "Ghost",
	}).Error)

	// Verified profiles are excluded from the pending list.
	require.NoError(t, db.Create(&models.Profile{
		UserID:       uuid.New(),
		FirstName:    "Done",
		Verification: models.VerificationVerified,
	}).Error)

	result, err := svc.PendingWithUsers()
	require.NoError(t, err)
	require.Len(t, result, 2)

	byFirst := map[string]int{result[0].FirstName: 0, result[1].FirstName: 1}
	hanna := result[byFirst["Hanna"]]
	assert.Equal(t, user.ID, hanna.ID)
	assert.Equal(t, "hanna", hanna.UserName)
	assert.Equal(t, models.RoleTenant, hanna.Role)
	assert.Equal(t, "hanna-id.jpg", hanna.IDImage)
	assert.Equal(t, models.VerificationPending, hanna.Verification)

	ghost := result[byFirst["Ghost"]]
	assert.Equal(t, ghostUser, ghost.ID)
	assert.Equal(t, "", ghost.UserName)
	assert.Equal(t, "", ghost.Email)
	assert.Equal(t, "", ghost.Role)
}

func TestProfileVerificationByUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	user := models.User{UserName: "hanna", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID}).Error)

	// Lookup is by owning user id, not profile id.
	profile, err := svc.SetVerificationByUser(user.ID, models.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, profile.Verification)

	// Verify twice, then reject: final state is rejected.
	_, err = svc.SetVerificationByUser(user.ID, models.VerificationVerified)
	require.NoError(t, err)
	profile, err = svc.SetVerificationByUser(user.ID, models.VerificationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, profile.Verification)

	_, err = svc.SetVerificationByUser(uuid.New(), models.VerificationVerified)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfilePendingCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	require.NoError(t, db.Create(&models.Profile{UserID: uuid.New()}).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: uuid.New(), Verification: models.VerificationRejected}).Error)

	count, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
