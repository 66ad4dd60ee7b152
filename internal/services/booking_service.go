package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// RentedWithDetails returns active rentals with the first property image and
// both usernames attached. Properties and users are fetched in two batch
// queries keyed by the booking foreign keys. Missing rows fall back to "" /
// "Unknown", matching what the dashboard expects.
func (s *BookingService) RentedWithDetails() ([]dto.RentedBooking, error) {
	var bookings []models.Booking
	if err := s.db.Where("status = ?", models.BookingStatusBooked).Find(&bookings).Error; err != nil {
		return nil, err
	}

	propertyIDs := make([]uuid.UUID, 0, len(bookings))
	userIDs := make([]uuid.UUID, 0, 2*len(bookings))
	for _, b := range bookings {
		propertyIDs = append(propertyIDs, b.PropertyID)
		userIDs = append(userIDs, b.TenantID, b.OwnerID)
	}

	properties := make(map[uuid.UUID]models.Property)
	users := make(map[uuid.UUID]models.User)
	if len(bookings) > 0 {
		var props []models.Property
		if err := s.db.Where("id IN ?", propertyIDs).Find(&props).Error; err != nil {
			return nil, err
		}
		for _, p := range props {
			properties[p.ID] = p
		}

		var us []models.User
		if err := s.db.Where("id IN ?", userIDs).Find(&us).Error; err != nil {
			return nil, err
		}
		for _, u := range us {
			users[u.ID] = u
		}
	}

	result := make([]dto.RentedBooking, len(bookings))
	for i, b := range bookings {
		view := dto.RentedBooking{
			Booking:        b,
			TenantUsername: "Unknown",
			OwnerUsername:  "Unknown",
		}
		if p, ok := properties[b.PropertyID]; ok && len(p.Image) > 0 {
			view.PropertyImage = p.Image[0]
		}
		if u, ok := users[b.TenantID]; ok {
			view.TenantUsername = u.UserName
		}
		if u, ok := users[b.OwnerID]; ok {
			view.OwnerUsername = u.UserName
		}
		result[i] = view
	}
	return result, nil
}

// TotalRents counts bookings in the booked state.
func (s *BookingService) TotalRents() (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusBooked).Count(&count).Error
	return count, err
}

// CountPerWeekday buckets all bookings by the weekday of their creation
// timestamp. All seven days are present, Sunday-first, zero-filled.
func (s *BookingService) CountPerWeekday() ([]dto.BookingDayBucket, error) {
	var rows []struct {
		CreatedAt time.Time
	}
	if err := s.db.Model(&models.Booking{}).Select("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make([]dto.BookingDayBucket, 7)
	for i := range buckets {
		buckets[i].Day = weekdayNames[i]
	}
	for _, r := range rows {
		buckets[int(r.CreatedAt.Weekday())].Count++
	}
	return buckets, nil
}
