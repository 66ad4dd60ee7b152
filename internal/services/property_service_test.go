package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProperties(t *testing.T, svc *PropertyService, n int, active bool) []models.Property {
	t.Helper()
	out := make([]models.Property, n)
	for i := 0; i < n; i++ {
		p := models.Property{
			PropertyName: fmt.Sprintf("Listing %d", i+1),
			Image:        []string{fmt.Sprintf("listing-%d.jpg", i+1)},
			Price:        1000,
			Address:      "Bole Road",
			Category:     "apartment",
			Status:       active,
			UserID:       uuid.New(),
		}
		require.NoError(t, svc.db.Create(&p).Error)
		out[i] = p
	}
	return out
}

func TestActivePaginated(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seedProperties(t, svc, 23, true)
	seedProperties(t, svc, 4, false) // inactive listings never appear

	page1, err := svc.ActivePaginated(1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Properties, 10)
	assert.Equal(t, int64(23), page1.TotalCount)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 1, page1.CurrentPage)

	page3, err := svc.ActivePaginated(3, 10)
	require.NoError(t, err)
	assert.Len(t, page3.Properties, 3)

	// A page past the end is empty, not an error.
	page4, err := svc.ActivePaginated(4, 10)
	require.NoError(t, err)
	assert.Empty(t, page4.Properties)
	assert.Equal(t, 3, page4.TotalPages)
}

func TestInactiveStatusSurvivesInsert(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	props := seedProperties(t, svc, 1, false)

	var stored models.Property
	require.NoError(t, db.First(&stored, "id = ?", props[0].ID).Error)
	assert.False(t, stored.Status)

	page, err := svc.ActivePaginated(1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Properties)
	assert.Equal(t, int64(0), page.TotalCount)
}

func TestSetVerificationIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	props := seedProperties(t, svc, 1, true)
	id := props[0].ID

	updated, err := svc.SetVerification(id, models.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, updated.Verification)

	// Accepting twice is a permitted no-op overwrite.
	updated, err = svc.SetVerification(id, models.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, updated.Verification)

	// Accept then reject ends rejected.
	updated, err = svc.SetVerification(id, models.VerificationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, updated.Verification)

	var stored models.Property
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, models.VerificationRejected, stored.Verification)
}

func TestSetVerificationNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	_, err := svc.SetVerification(uuid.New(), models.VerificationVerified)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPendingWithOwners(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	owner := uuid.New()
	withProfile := models.Property{
		PropertyName: "Documented",
		Price:        2500,
		UserID:       owner,
	}
	require.NoError(t, db.Create(&withProfile).Error)
	require.NoError(t, db.Create(&models.Profile{
		UserID:         owner,
		FirstName:      "Sara",
		LastName:       "Bekele",
		ProfilePicture: "sara.png",
	}).Error)

	orphan := models.Property{
		PropertyName: "Orphan",
		Price:        1800,
		UserID:       uuid.New(),
	}
	require.NoError(t, db.Create(&orphan).Error)

	result, err := svc.PendingWithOwners()
	require.NoError(t, err)
	require.Len(t, result, 2)

	byName := map[string]int{result[0].PropertyName: 0, result[1].PropertyName: 1}
	doc := result[byName["Documented"]]
	assert.Equal(t, "Sara Bekele", doc.OwnerName)
	assert.Equal(t, "sara.png", doc.OwnerProfilePic)

	// A listing whose owner has no profile still appears, owner fields empty.
	orp := result[byName["Orphan"]]
	assert.Equal(t, "", orp.OwnerName)
	assert.Equal(t, "", orp.OwnerProfilePic)
}

func TestPendingCountAndTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	props := seedProperties(t, svc, 3, true)
	_, err := svc.SetVerification(props[0].ID, models.VerificationVerified)
	require.NoError(t, err)

	count, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
