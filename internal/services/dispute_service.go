package services

import (
	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

type DisputeService struct {
	db *gorm.DB
}

func NewDisputeService(db *gorm.DB) *DisputeService {
	return &DisputeService{db: db}
}

// ContestedWithProperty returns disputes the tenant contested, each with a
// summary of the disputed property. The booking reference is a free-form
// string: unparseable or dangling references yield property = null rather
// than dropping the dispute.
func (s *DisputeService) ContestedWithProperty() ([]dto.DisputeView, error) {
	var disputes []models.Dispute
	if err := s.db.Where("disagree = ?", true).Find(&disputes).Error; err != nil {
		return nil, err
	}

	bookingIDs := make([]uuid.UUID, 0, len(disputes))
	for _, d := range disputes {
		if id, err := uuid.Parse(d.BookingID); err == nil {
			bookingIDs = append(bookingIDs, id)
		}
	}

	bookings := make(map[uuid.UUID]models.Booking)
	properties := make(map[uuid.UUID]models.Property)
	if len(bookingIDs) > 0 {
		var bs []models.Booking
		if err := s.db.Where("id IN ?", bookingIDs).Find(&bs).Error; err != nil {
			return nil, err
		}
		propertyIDs := make([]uuid.UUID, 0, len(bs))
		for _, b := range bs {
			bookings[b.ID] = b
			propertyIDs = append(propertyIDs, b.PropertyID)
		}

		if len(propertyIDs) > 0 {
			var ps []models.Property
			if err := s.db.Where("id IN ?", propertyIDs).Find(&ps).Error; err != nil {
				return nil, err
			}
			for _, p := range ps {
				properties[p.ID] = p
			}
		}
	}

	result := make([]dto.DisputeView, len(disputes))
	for i, d := range disputes {
		view := dto.DisputeView{Dispute: d}
		if id, err := uuid.Parse(d.BookingID); err == nil {
			if b, ok := bookings[id]; ok {
				if p, ok := properties[b.PropertyID]; ok {
					view.Property = &dto.DisputeProperty{
						Name:  p.PropertyName,
						Price: p.Price,
					}
				}
			}
		}
		result[i] = view
	}
	return result, nil
}
