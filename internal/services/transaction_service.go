package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

// weekdayNames pins the chart bucket order: Sunday-first, matching
// time.Weekday numbering (0 = Sunday).
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// ListWithUsers returns every transaction with the user reference populated
// to {_id, user_name}, fetched in one batch.
func (s *TransactionService) ListWithUsers() ([]dto.TransactionView, error) {
	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, len(transactions))
	for i, t := range transactions {
		userIDs[i] = t.UserID
	}

	users := make(map[uuid.UUID]models.User)
	if len(userIDs) > 0 {
		var us []models.User
		if err := s.db.Where("id IN ?", userIDs).Find(&us).Error; err != nil {
			return nil, err
		}
		for _, u := range us {
			users[u.ID] = u
		}
	}

	result := make([]dto.TransactionView, len(transactions))
	for i, t := range transactions {
		view := dto.TransactionView{
			Transaction: t,
			User:        dto.TxUser{ID: t.UserID},
		}
		if u, ok := users[t.UserID]; ok {
			view.User.UserName = u.UserName
		}
		result[i] = view
	}
	return result, nil
}

// Total counts all transactions.
func (s *TransactionService) Total() (int64, error) {
	var count int64
	err := s.db.Model(&models.Transaction{}).Count(&count).Error
	return count, err
}

// PerWeekday sums transaction amounts and counts per creation weekday.
// All seven buckets are present, Sunday-first, zero-filled. Bucketing runs
// in Go over (created_at, amount) rows, which keeps the weekday convention
// engine-independent.
func (s *TransactionService) PerWeekday() ([]dto.DayBucket, error) {
	var rows []struct {
		CreatedAt time.Time
		Amount    float64
	}
	if err := s.db.Model(&models.Transaction{}).Select("created_at", "amount").Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make([]dto.DayBucket, 7)
	for i := range buckets {
		buckets[i].Day = weekdayNames[i]
	}
	for _, r := range rows {
		day := int(r.CreatedAt.Weekday())
		buckets[day].TotalAmount += r.Amount
		buckets[day].Count++
	}
	return buckets, nil
}
