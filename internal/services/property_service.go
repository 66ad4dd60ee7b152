package services

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/dto"
	"github.com/rentpal/admin-backend/internal/models"
	"gorm.io/gorm"
)

var ErrPropertyNotFound = errors.New("Property not found")

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

// ActivePaginated returns one page of active listings with the pagination
// envelope. page and limit arrive pre-clamped by the handler.
func (s *PropertyService) ActivePaginated(page, limit int) (*dto.PagedProperties, error) {
	offset := (page - 1) * limit

	var properties []models.Property
	if err := s.db.Where("status = ?", true).
		Offset(offset).
		Limit(limit).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Property{}).Where("status = ?", true).Count(&total).Error; err != nil {
		return nil, err
	}

	return &dto.PagedProperties{
		Properties:  properties,
		TotalCount:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// PendingWithOwners returns listings awaiting verification with owner name
// and photo attached. Owner profiles are fetched in one batch keyed by
// user_id; missing profiles leave the owner fields empty.
func (s *PropertyService) PendingWithOwners() ([]dto.PendingProperty, error) {
	var properties []models.Property
	if err := s.db.Where("verification = ?", models.VerificationPending).Find(&properties).Error; err != nil {
		return nil, err
	}

	ownerIDs := make([]uuid.UUID, len(properties))
	for i, p := range properties {
		ownerIDs[i] = p.UserID
	}

	var profiles []models.Profile
	if len(ownerIDs) > 0 {
		if err := s.db.Where("user_id IN ?", ownerIDs).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}

	byOwner := make(map[uuid.UUID]models.Profile, len(profiles))
	for _, p := range profiles {
		if _, ok := byOwner[p.UserID]; !ok {
			byOwner[p.UserID] = p
		}
	}

	result := make([]dto.PendingProperty, len(properties))
	for i, prop := range properties {
		profile := byOwner[prop.UserID]
		result[i] = dto.PendingProperty{
			ID:              prop.ID,
			PropertyName:    prop.PropertyName,
			Image:           prop.Image,
			Description:     prop.Description,
			Price:           prop.Price,
			Location:        prop.Location,
			Address:         prop.Address,
			Category:        prop.Category,
			CreatedAt:       prop.CreatedAt,
			Verification:    prop.Verification,
			OwnerName:       strings.TrimSpace(profile.FirstName + " " + profile.LastName),
			OwnerProfilePic: profile.ProfilePicture,
		}
	}
	return result, nil
}

// SetVerification moves a listing to verified or rejected. Re-applying a
// state is a permitted no-op overwrite; there is no path back to pending.
func (s *PropertyService) SetVerification(id uuid.UUID, state string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&property).Update("verification", state).Error; err != nil {
		return nil, err
	}
	property.Verification = state
	return &property, nil
}

// PendingList returns the raw pending listings for the notification poller.
func (s *PropertyService) PendingList() ([]models.Property, error) {
	var properties []models.Property
	err := s.db.Where("verification = ?", models.VerificationPending).Find(&properties).Error
	return properties, err
}

// PendingCount feeds the dashboard badge poller.
func (s *PropertyService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Property{}).Where("verification = ?", models.VerificationPending).Count(&count).Error
	return count, err
}

// Total counts all listings regardless of state.
func (s *PropertyService) Total() (int64, error) {
	var count int64
	err := s.db.Model(&models.Property{}).Count(&count).Error
	return count, err
}
