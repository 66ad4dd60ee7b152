package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransaction(userID uuid.UUID, txRef string, amount float64, createdAt time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:        userID,
		Type:          models.TxTypeTransfer,
		Amount:        amount,
		TxRef:         txRef,
		Status:        models.TxStatusCompleted,
		FromAccountNo: "1000",
		ToAccountNo:   "2000",
		CreatedAt:     createdAt,
	}
}

func TestTxRefUniqueConstraint(t *testing.T) {
	db := setupTestDB(t)

	userID := uuid.New()
	require.NoError(t, db.Create(newTransaction(userID, "TX-001", 10, time.Now())).Error)

	err := db.Create(newTransaction(userID, "TX-001", 20, time.Now())).Error
	assert.Error(t, err, "duplicate tx_ref must be rejected by the unique index")
}

func TestPerWeekdayZeroFills(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)

	userID := uuid.New()
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)    // a Monday
	wednesday := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC) // a Wednesday
	require.NoError(t, db.Create(newTransaction(userID, "TX-A", 100, monday)).Error)
	require.NoError(t, db.Create(newTransaction(userID, "TX-B", 50, monday)).Error)
	require.NoError(t, db.Create(newTransaction(userID, "TX-C", 75, wednesday)).Error)

	buckets, err := svc.PerWeekday()
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, "Sunday", buckets[0].Day)
	assert.Equal(t, "Saturday", buckets[6].Day)

	assert.Equal(t, float64(150), buckets[1].TotalAmount)
	assert.Equal(t, int64(2), buckets[1].Count)
	assert.Equal(t, float64(75), buckets[3].TotalAmount)
	assert.Equal(t, int64(1), buckets[3].Count)

	for _, i := range []int{0, 2, 4, 5, 6} {
		assert.Zero(t, buckets[i].TotalAmount, buckets[i].Day)
		assert.Zero(t, buckets[i].Count, buckets[i].Day)
	}
}

func TestPerWeekdayEmptyTable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)

	buckets, err := svc.PerWeekday()
	require.NoError(t, err)
	require.Len(t, buckets, 7)
	for i, b := range buckets {
		assert.Equal(t, weekdayNames[i], b.Day)
		assert.Zero(t, b.Count)
	}
}

func TestListWithUsersPopulates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)

	user := models.User{UserName: "dawit", Email: "dawit@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(newTransaction(user.ID, "TX-P", 42, time.Now())).Error)

	// Transaction whose user no longer exists keeps the id, name empty.
	ghost := uuid.New()
	require.NoError(t, db.Create(newTransaction(ghost, "TX-G", 7, time.Now())).Error)

	result, err := svc.ListWithUsers()
	require.NoError(t, err)
	require.Len(t, result, 2)

	byRef := map[string]int{result[0].TxRef: 0, result[1].TxRef: 1}
	populated := result[byRef["TX-P"]]
	assert.Equal(t, user.ID, populated.User.ID)
	assert.Equal(t, "dawit", populated.User.UserName)

	orphan := result[byRef["TX-G"]]
	assert.Equal(t, ghost, orphan.User.ID)
	assert.Equal(t, "", orphan.User.UserName)
}
